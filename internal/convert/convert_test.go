package convert

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/sshconv/pkg/sshconfig"
)

const sampleSSH = "Host example.com\n    HostName example.com\n    User admin\n    Port 2222\n"

func TestConvert_IdentityShortCircuit(t *testing.T) {
	// Same source and target returns the input unchanged, byte for byte,
	// even when the text is not valid in that format.
	tests := []struct {
		name   string
		text   string
		format Format
	}{
		{"ssh", sampleSSH, FormatSSH},
		{"yaml", "hosts:\n  - Host: example\n", FormatYAML},
		{"json", `{"hosts": []}`, FormatJSON},
		{"garbage ssh", "%% not config %%", FormatSSH},
		{"garbage json", "{definitely not json", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Convert(tt.text, tt.format, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.text, out)
		})
	}
}

func TestConvert_SSHToJSON(t *testing.T) {
	out, err := Convert(sampleSSH, FormatAuto, FormatJSON)
	require.NoError(t, err)

	var decoded struct {
		Hosts []map[string]any `json:"hosts"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Hosts, 1)

	entry := decoded.Hosts[0]
	assert.Equal(t, "example.com", entry["Host"])
	assert.Equal(t, "example.com", entry["HostName"])
	assert.Equal(t, "admin", entry["User"])
	// Values stay strings; the port must not become a number.
	assert.Equal(t, "2222", entry["Port"])

	// Members keep document order rather than the sorted order a plain
	// map marshal would impose.
	hostIdx := strings.Index(out, `"Host"`)
	nameIdx := strings.Index(out, `"HostName"`)
	userIdx := strings.Index(out, `"User"`)
	portIdx := strings.Index(out, `"Port"`)
	assert.True(t, hostIdx < nameIdx && nameIdx < userIdx && userIdx < portIdx,
		"keys out of order in %s", out)
}

func TestConvert_SSHToYAML(t *testing.T) {
	out, err := Convert(sampleSSH, FormatAuto, FormatYAML)
	require.NoError(t, err)

	assert.Contains(t, out, "hosts:")
	assert.Contains(t, out, "- Host: example.com")
	assert.Contains(t, out, "HostName: example.com")
	// The port serializes quoted so it reads back as a string.
	assert.Contains(t, out, `Port: "2222"`)
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestConvert_YAMLToSSH(t *testing.T) {
	yamlText := "hosts:\n  - Host: example.com\n    HostName: example.com\n    User: admin\n    Port: \"2222\"\n"

	// The detector reads this shape as ssh (spaced values), so the source
	// format is declared explicitly.
	out, err := Convert(yamlText, FormatYAML, FormatSSH)
	require.NoError(t, err)
	assert.Equal(t, sampleSSH, out)
}

func TestConvert_JSONToSSH(t *testing.T) {
	jsonText := `{"hosts": [{"Host": "example.com", "HostName": "example.com", "User": "admin", "Port": "2222"}]}`

	out, err := Convert(jsonText, FormatAuto, FormatSSH)
	require.NoError(t, err)
	assert.Equal(t, sampleSSH, out)
}

func TestConvert_JSONNumericValuesBecomeStrings(t *testing.T) {
	jsonText := `{"hosts": [{"Host": "example", "Port": 2222, "Compression": true}]}`

	out, err := Convert(jsonText, FormatJSON, FormatSSH)
	require.NoError(t, err)
	assert.Contains(t, out, "    Port 2222\n")
	assert.Contains(t, out, "    Compression true\n")
}

func TestConvert_RoundTripThroughYAML(t *testing.T) {
	text := "Host web1 web2\n" +
		"    IdentityFile ~/.ssh/id_a\n" +
		"    IdentityFile ~/.ssh/id_b\n" +
		"    User deploy\n" +
		"\n" +
		"Host db\n" +
		"    HostName db.internal\n" +
		"    LocalForward 5432 localhost:5432\n"

	yamlOut, err := Convert(text, FormatSSH, FormatYAML)
	require.NoError(t, err)
	back, err := Convert(yamlOut, FormatYAML, FormatSSH)
	require.NoError(t, err)
	assert.Equal(t, text, back)
}

func TestConvert_RoundTripThroughJSON(t *testing.T) {
	text := "Host bastion\n" +
		"    HostName bastion.example.com\n" +
		"    ProxyCommand ssh -W %h:%p jump\n" +
		"\n" +
		"Host *\n" +
		"    ServerAliveInterval 60\n"

	jsonOut, err := Convert(text, FormatSSH, FormatJSON)
	require.NoError(t, err)
	back, err := Convert(jsonOut, FormatJSON, FormatSSH)
	require.NoError(t, err)
	assert.Equal(t, text, back)
}

func TestConvert_WildcardSynthesis(t *testing.T) {
	out, err := Convert("User admin\n", FormatSSH, FormatJSON)
	require.NoError(t, err)

	var decoded struct {
		Hosts []map[string]any `json:"hosts"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Hosts, 1)
	assert.Equal(t, "*", decoded.Hosts[0]["Host"])
	assert.Equal(t, "admin", decoded.Hosts[0]["User"])
}

func TestConvert_MultiPatternHostThroughJSON(t *testing.T) {
	out, err := Convert("Host a b c\n    User x\n", FormatSSH, FormatJSON)
	require.NoError(t, err)

	var decoded struct {
		Hosts []map[string]any `json:"hosts"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Hosts, 1)
	assert.Equal(t, []any{"a", "b", "c"}, decoded.Hosts[0]["Host"])
}

func TestConvert_UnsupportedFormats(t *testing.T) {
	tests := []struct {
		name   string
		source Format
		target Format
	}{
		{"unknown source", Format("toml"), FormatJSON},
		{"unknown target", FormatSSH, Format("xml")},
		{"auto target", FormatSSH, FormatAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(sampleSSH, tt.source, tt.target)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsupportedFormat)
		})
	}
}

func TestConvert_InvalidStructuredInput(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		source Format
	}{
		{"malformed json", "{not json}", FormatJSON},
		{"json scalar top level", `"hello"`, FormatJSON},
		{"json missing hosts", `{"servers": []}`, FormatJSON},
		{"malformed yaml", "hosts: [unclosed\n", FormatYAML},
		{"yaml scalar top level", "just a phrase\n", FormatYAML},
		{"yaml missing hosts", "servers:\n  - Host: a\n", FormatYAML},
		{"yaml hosts not a sequence", "hosts: single\n", FormatYAML},
		{"empty yaml", "", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.text, tt.source, FormatSSH)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestConvert_SkipsEntriesWithoutHost(t *testing.T) {
	jsonText := `{"hosts": [{"User": "nohost"}, {"Host": "kept", "User": "x"}, "scalar"]}`

	out, err := Convert(jsonText, FormatJSON, FormatSSH)
	require.NoError(t, err)
	assert.Equal(t, "Host kept\n    User x\n", out)
}

func TestRender_EmptyDocument(t *testing.T) {
	doc := &sshconfig.Document{}

	ssh, err := Render(doc, FormatSSH)
	require.NoError(t, err)
	assert.Equal(t, "\n", ssh)

	yamlOut, err := Render(doc, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "hosts: []\n", yamlOut)

	jsonOut, err := Render(doc, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"hosts\": []\n}", jsonOut)
}

func TestRender_UnsupportedTarget(t *testing.T) {
	_, err := Render(&sshconfig.Document{}, Format("ini"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

// Converting with an auto source on text the detector reads as the target
// format is the identity conversion.
func TestConvert_AutoDetectIdentity(t *testing.T) {
	out, err := Convert(sampleSSH, FormatAuto, FormatSSH)
	require.NoError(t, err)
	assert.Equal(t, sampleSSH, out)
}
