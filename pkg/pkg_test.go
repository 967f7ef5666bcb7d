package pkg

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	assert.Equal(t, "classcond", Name)
}

func TestDescription(t *testing.T) {
	assert.Equal(t, "Conditional CSS class extractor", Description)
}

func TestVersion(t *testing.T) {
	// Tests run with the package directory as working directory.
	buf, err := os.ReadFile("VERSION")
	require.NoError(t, err)

	assert.Equal(t, strings.TrimSpace(string(buf)), Version())
}

func TestAuthor(t *testing.T) {
	require.NotEmpty(t, Author)

	assert.Contains(t, Author, AuthorInfo{Name: "ardnew", Email: "andrew@ardnew.com"})

	for i, author := range Author {
		assert.False(t, author.Name == "" && author.Email == "",
			"Author[%d] must define at least Name or Email", i)
	}
}

func TestPrefix(t *testing.T) {
	require.NotEmpty(t, Prefix())
	assert.False(t, strings.HasPrefix(Prefix(), "."))

	for _, dir := range []string{ConfigDir(), CacheDir()} {
		assert.True(t, strings.HasSuffix(dir, Prefix()), "%q ends with %q", dir, Prefix())
	}
}

func TestUserDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	found := func() (string, error) { return "/xdg", nil }
	missing := func() (string, error) { return "", errors.New("unset") }

	assert.Equal(t, filepath.Join("/xdg", Prefix()), userDir(found, ".cache"))

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".cache", Prefix()), userDir(missing, ".cache"))
}
