package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string, string) {
	t.Helper()
	lists := t.TempDir()
	data := t.TempDir()
	st, err := New(lists, data)
	require.NoError(t, err)
	return st, lists, data
}

func TestLoadListSkipsBlankLines(t *testing.T) {
	st, lists, _ := newTestStore(t)
	content := "one\n\n  two  \n\n\nthree\n"
	require.NoError(t, os.WriteFile(filepath.Join(lists, "truths.txt"), []byte(content), 0o644))

	items := st.LoadList("truths")
	assert.Equal(t, []string{"one", "two", "three"}, items)
}

func TestLoadListMissingFile(t *testing.T) {
	st, _, _ := newTestStore(t)
	assert.Empty(t, st.LoadList("nope"))
}

func TestLoadQuestions(t *testing.T) {
	st, lists, _ := newTestStore(t)
	raw := `[{"question":"q?","options":{"a":"1","b":"2"},"answer":"a"}]`
	require.NoError(t, os.WriteFile(filepath.Join(lists, "trivia.json"), []byte(raw), 0o644))

	qs := st.LoadQuestions("trivia")
	require.Len(t, qs, 1)
	assert.Equal(t, "q?", qs[0].Question)
	assert.Equal(t, "a", qs[0].Answer)
	assert.Equal(t, "2", qs[0].Options["b"])
}

func TestCorruptJSONFallsBackToDefault(t *testing.T) {
	st, lists, _ := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(lists, "trivia.json"), []byte("{not json"), 0o644))
	assert.Empty(t, st.LoadQuestions("trivia"))
}

func TestListFiles(t *testing.T) {
	st, lists, _ := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(lists, "dares.txt"), []byte("a\nb\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(lists, "trivia.json"), []byte(`[{"question":"q"}]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(lists, "readme.md"), []byte("ignorame"), 0o644))

	details := st.ListFiles()
	require.Len(t, details, 2)
	byName := map[string]int{}
	for _, d := range details {
		byName[d.Name] = d.Items
	}
	assert.Equal(t, 2, byName["dares.txt"])
	assert.Equal(t, 1, byName["trivia.json"])
}

func TestScoreRepoPreservesInsertionOrder(t *testing.T) {
	st, _, data := newTestStore(t)
	r := NewScoreRepo(st)

	require.NoError(t, r.Add("a", 5))
	require.NoError(t, r.Add("b", 9))
	require.NoError(t, r.Add("c", 9))
	require.NoError(t, r.Add("b", 1))

	entries := r.All()
	require.Len(t, entries, 3)
	assert.Equal(t, ScoreEntry{"a", 5}, entries[0])
	assert.Equal(t, ScoreEntry{"b", 10}, entries[1])
	assert.Equal(t, ScoreEntry{"c", 9}, entries[2])

	// pretty-printed en disco
	b, err := os.ReadFile(filepath.Join(data, "scores.json"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "{\n    "), "esperaba JSON con indent: %s", b)
}

func TestScoreRepoCorruptFile(t *testing.T) {
	st, _, data := newTestStore(t)
	r := NewScoreRepo(st)
	require.NoError(t, os.WriteFile(filepath.Join(data, "scores.json"), []byte("{{{"), 0o644))

	assert.Empty(t, r.All())

	// el próximo save pisa el archivo corrupto
	require.NoError(t, r.Add("a", 1))
	assert.Equal(t, []ScoreEntry{{"a", 1}}, r.All())
}

func TestBirthdayRepoOverwrites(t *testing.T) {
	st, _, _ := newTestStore(t)
	r := NewBirthdayRepo(st)

	require.NoError(t, r.Set("u1", "25-12"))
	require.NoError(t, r.Set("u1", "01-01"))

	all := r.All()
	assert.Equal(t, map[string]string{"u1": "01-01"}, all)
}

func TestCommandRepoRoundTrip(t *testing.T) {
	st, _, _ := newTestStore(t)
	r := NewCommandRepo(st)

	_, ok := r.Get("!ping")
	assert.False(t, ok)

	require.NoError(t, r.Set("!ping", "pong!"))
	text, ok := r.Get("!ping")
	require.True(t, ok)
	assert.Equal(t, "pong!", text)

	require.NoError(t, r.Set("!ping", "pong pong!"))
	text, _ = r.Get("!ping")
	assert.Equal(t, "pong pong!", text)
}
