package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/supernalintelligence/interface-docs-sub001/domain/blog"
	"github.com/supernalintelligence/interface-docs-sub001/domain/chat"
	"github.com/supernalintelligence/interface-docs-sub001/domain/tools"
	"github.com/supernalintelligence/interface-docs-sub001/internal/testutil"
)

// blogDir writes the shared blog fixture to a temp directory.
func blogDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, f := range testutil.BlogFS() {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), f.Data, 0o644))
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommand_Flags(t *testing.T) {
	root := NewRootCommand()

	for name, typ := range map[string]string{"blog-dir": "string", "output": "string", "debug": "bool"} {
		f := root.PersistentFlags().Lookup(name)
		require.NotNil(t, f, "--%s should be registered", name)
		assert.Equal(t, typ, f.Value.Type())
	}

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"match", "resolve", "posts", "version"})
}

func TestMatch_Table(t *testing.T) {
	dir := blogDir(t)

	out, err := run(t, "match", "--blog-dir", dir, "type-safe")
	require.NoError(t, err)
	assert.Contains(t, out, "Best match: Type-Safe UI Testing (/blog/type-safe-ui-testing)")
	assert.Contains(t, out, "type-safe-ui-testing")

	out, err = run(t, "match", "--blog-dir", dir, "zzz-no-match")
	require.NoError(t, err)
	assert.Equal(t, "No match for \"zzz-no-match\".\n", out)
}

func TestMatch_JSON(t *testing.T) {
	out, err := run(t, "match", "--blog-dir", blogDir(t), "-o", "json", "less", "boilerplate")
	require.NoError(t, err)

	var res matchResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "less boilerplate", res.Query)
	require.NotNil(t, res.Best)
	assert.Equal(t, "less-boilerplate", res.Best.Slug)
	require.NotEmpty(t, res.Results)
	assert.Equal(t, "less-boilerplate", res.Results[0].Post.Slug)
	for i := 1; i < len(res.Results); i++ {
		assert.GreaterOrEqual(t, res.Results[i-1].Score, res.Results[i].Score)
	}
}

func TestMatch_RequiresQuery(t *testing.T) {
	_, err := run(t, "match", "--blog-dir", blogDir(t))
	assert.Error(t, err)
}

func TestResolve_JSON(t *testing.T) {
	out, err := run(t, "resolve", "--blog-dir", blogDir(t), "-o", "json", "--theme", "dark", "toggle", "dark", "mode")
	require.NoError(t, err)

	var resp chat.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "theme.toggle", resp.Tool)
	assert.Equal(t, chat.MatchPattern, resp.Matched)
	require.NotNil(t, resp.Action)
	assert.Equal(t, tools.ActionToggleTheme, resp.Action.Type)
	assert.Equal(t, "light", resp.Action.Theme)
}

func TestResolve_Table(t *testing.T) {
	out, err := run(t, "resolve", "--blog-dir", blogDir(t), "go to the docs")
	require.NoError(t, err)
	assert.Contains(t, out, "navigate /docs")
	assert.Contains(t, out, "Going to Docs.")
}

func TestPosts(t *testing.T) {
	dir := blogDir(t)

	out, err := run(t, "posts", "--blog-dir", dir, "-o", "json")
	require.NoError(t, err)
	var list blog.PostList
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Equal(t, 3, list.Total)
	assert.Equal(t, "less-boilerplate", list.Posts[0].Slug)

	out, err = run(t, "posts", "--blog-dir", dir, "--tag", "chat")
	require.NoError(t, err)
	assert.Contains(t, out, "chat-commands")
	assert.NotContains(t, out, "less-boilerplate")
}

func TestUnsupportedOutput(t *testing.T) {
	_, err := run(t, "posts", "--blog-dir", blogDir(t), "-o", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sitectl")
	assert.Contains(t, out, "Version:")
}
