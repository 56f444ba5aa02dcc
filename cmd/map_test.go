package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/blackwood/internal/mansion"
)

func TestMapTree(t *testing.T) {
	out, err := runCLI(t, "", "map")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, mansion.Hall+"\n"), out)
	assert.Contains(t, out, "(e) "+mansion.SecretStudy)
	assert.Contains(t, out, "(d) "+mansion.EmptyCloset)
}

func TestMapTreeOptions(t *testing.T) {
	out, err := runCLI(t, "", "map", "--depth", "1", "--show-blocked")
	require.NoError(t, err)
	assert.Contains(t, out, "...")
	assert.NotContains(t, out, mansion.Library)

	out, err = runCLI(t, "", "map", "--show-blocked")
	require.NoError(t, err)
	assert.Contains(t, out, "(d) (blocked)", "the library has no right exit")
}

func TestMapMermaid(t *testing.T) {
	out, err := runCLI(t, "", "map", "-o", "mermaid", "--direction", "LR")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph LR\n"), out)
	assert.Contains(t, out, "-->|e|")
}

func TestMapErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad output", []string{"map", "-o", "json"}, "invalid output"},
		{"bad direction", []string{"map", "-o", "mermaid", "--direction", "UP"}, "invalid direction"},
		{"negative depth", []string{"map", "--depth", "-1"}, "invalid depth"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMapMarkdownTitle(t *testing.T) {
	out, err := runCLI(t, "", "map", "-o", "markdown")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# The Mystery of Blackwood Manor\n\n- "+mansion.Hall+"\n"), out)
	assert.Contains(t, out, "**"+mansion.SecretStudy+"**")
}

func TestMapHTML(t *testing.T) {
	out, err := runCLI(t, "", "map", "-o", "html")
	require.NoError(t, err)
	assert.Contains(t, out, "<ul>")
	assert.Contains(t, out, "<li>"+mansion.Hall)
}

func TestMapWhere(t *testing.T) {
	out, err := runCLI(t, "", "map", "--where", "_.leaf && _.side == 'left'")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		mansion.Hall + " > " + mansion.LivingRoom + " > " + mansion.Library + " > " + mansion.SecretStudy,
		mansion.Hall + " > " + mansion.Kitchen + " > " + mansion.Pantry + " > " + mansion.DampBasement,
		mansion.Hall + " > " + mansion.Kitchen + " > " + mansion.MasterBedroom + " > " + mansion.LuxuryBathroom,
		"",
	}, "\n"), out)
}

func TestMapWhereNoMatch(t *testing.T) {
	out, err := runCLI(t, "", "map", "--where", "_.depth > 10")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMapWhereErrors(t *testing.T) {
	_, err := runCLI(t, "", "map", "--where", "_.colour == 'red'")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --where")
	assert.Contains(t, err.Error(), "unknown room field colour")

	_, err = runCLI(t, "", "map", "--where", "_.depth +")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compilation error")
}

func TestMapWherePaging(t *testing.T) {
	out, err := runCLI(t, "", "map", "--where", "_.leaf", "--offset", "1", "--limit", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], mansion.BackPorch))
	assert.True(t, strings.HasSuffix(lines[1], mansion.DampBasement))

	out, err = runCLI(t, "", "map", "--where", "_.leaf", "--tail", "1")
	require.NoError(t, err)
	assert.Equal(t, mansion.Hall+" > "+mansion.Kitchen+" > "+mansion.MasterBedroom+" > "+mansion.EmptyCloset+"\n", out)
}

func TestMapPagingErrors(t *testing.T) {
	_, err := runCLI(t, "", "map", "--where", "_.leaf", "--limit", "1", "--tail", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")

	_, err = runCLI(t, "", "map", "--limit", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "require --where")
}
