package filesystem

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mimicfs/mimicfs"
	"github.com/mimicfs/mimicfs/config"
)

func newTestFS(t *testing.T) *FileSystem {
	t.Helper()
	return New(config.NewConfig(nil))
}

// requireCode asserts err is an engine error with the given code.
func requireCode(t *testing.T, err error, code mimicfs.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	got, ok := mimicfs.CodeOf(err)
	require.True(t, ok, "expected engine error, got %v", err)
	assert.Equal(t, code, got)
}

func TestNew(t *testing.T) {
	t.Parallel()

	fs := newTestFS(t)

	require.NotNil(t, fs)
	assert.Equal(t, "/", fs.CurrentPath(), "engine starts at root")
	assert.Empty(t, fs.List())
}

func TestFileSystem_CreateFile(t *testing.T) {
	t.Parallel()

	t.Run("EmptyContent", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		created, err := fs.CreateFile("notes.txt", nil)
		require.NoError(t, err)

		info, err := fs.Stat("notes.txt")
		require.NoError(t, err)
		assert.Equal(t, mimicfs.KindFile, info.Kind)
		assert.Equal(t, 0, info.Size)
		assert.Equal(t, created.ID, info.ID)
		assert.False(t, info.ModifiedAt.Before(info.CreatedAt))
	})

	t.Run("WithContent", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		_, err := fs.CreateFile("notes.txt", []byte("hello"))
		require.NoError(t, err)

		info, err := fs.Stat("notes.txt")
		require.NoError(t, err)
		assert.Equal(t, 5, info.Size)
	})

	t.Run("Duplicate", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		_, err := fs.CreateFile("dup.txt", nil)
		require.NoError(t, err)

		_, err = fs.CreateFile("dup.txt", nil)
		requireCode(t, err, mimicfs.ErrAlreadyExists)
	})

	t.Run("DuplicateOfDirectory", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		_, err := fs.CreateDir("taken")
		require.NoError(t, err)

		// a sibling of either kind blocks the name
		_, err = fs.CreateFile("taken", nil)
		requireCode(t, err, mimicfs.ErrAlreadyExists)
	})

	t.Run("InvalidNames", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		for _, name := range []string{"", "a/b", "/"} {
			_, err := fs.CreateFile(name, nil)
			requireCode(t, err, mimicfs.ErrInvalidName)
		}
	})
}

func TestFileSystem_CreateDir(t *testing.T) {
	t.Parallel()

	t.Run("Basic", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		info, err := fs.CreateDir("docs")
		require.NoError(t, err)
		assert.Equal(t, mimicfs.KindDirectory, info.Kind)
		assert.Equal(t, 0, info.Size)
	})

	t.Run("Duplicate", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		_, err := fs.CreateDir("docs")
		require.NoError(t, err)
		_, err = fs.CreateDir("docs")
		requireCode(t, err, mimicfs.ErrAlreadyExists)
	})

	t.Run("InvalidName", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		_, err := fs.CreateDir("a/b")
		requireCode(t, err, mimicfs.ErrInvalidName)
	})
}

func TestFileSystem_ChangeDir(t *testing.T) {
	t.Parallel()

	t.Run("NestedPath", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		_, err := fs.CreateDir("a")
		require.NoError(t, err)
		require.NoError(t, fs.ChangeDir("a"))
		_, err = fs.CreateDir("b")
		require.NoError(t, err)
		require.NoError(t, fs.ChangeDir("b"))

		assert.Equal(t, "/a/b", fs.CurrentPath())
	})

	t.Run("ParentSteps", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		_, err := fs.CreateDir("a")
		require.NoError(t, err)
		require.NoError(t, fs.ChangeDir("a"))
		_, err = fs.CreateDir("b")
		require.NoError(t, err)
		require.NoError(t, fs.ChangeDir("b"))

		// exactly 2 steps back to root
		require.NoError(t, fs.ChangeDir(".."))
		assert.Equal(t, "/a", fs.CurrentPath())
		require.NoError(t, fs.ChangeDir(".."))
		assert.Equal(t, "/", fs.CurrentPath())
	})

	t.Run("ParentAtRoot", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		err := fs.ChangeDir("..")
		requireCode(t, err, mimicfs.ErrDirectoryNotFound)
		assert.Equal(t, "/", fs.CurrentPath())
	})

	t.Run("RootAlwaysSucceeds", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		require.NoError(t, fs.ChangeDir("/"))
		_, err := fs.CreateDir("deep")
		require.NoError(t, err)
		require.NoError(t, fs.ChangeDir("deep"))
		require.NoError(t, fs.ChangeDir("/"))
		assert.Equal(t, "/", fs.CurrentPath())
	})

	t.Run("FileIsNotFound", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		_, err := fs.CreateFile("plain.txt", nil)
		require.NoError(t, err)

		// a file with the target name is not-found, not a type error
		err = fs.ChangeDir("plain.txt")
		requireCode(t, err, mimicfs.ErrDirectoryNotFound)
	})

	t.Run("Unknown", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		err := fs.ChangeDir("ghost")
		requireCode(t, err, mimicfs.ErrDirectoryNotFound)
	})
}

func TestFileSystem_WriteRead(t *testing.T) {
	t.Parallel()

	t.Run("RoundTrip", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		_, err := fs.CreateFile("data.txt", nil)
		require.NoError(t, err)

		content := []byte("some content here")
		require.NoError(t, fs.WriteFile("data.txt", content))

		got, err := fs.ReadFile("data.txt")
		require.NoError(t, err)
		assert.Equal(t, content, got)

		info, err := fs.Stat("data.txt")
		require.NoError(t, err)
		assert.Equal(t, len(content), info.Size)
	})

	t.Run("RepeatedIdenticalWrites", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		_, err := fs.CreateFile("data.txt", nil)
		require.NoError(t, err)

		content := []byte("same")
		require.NoError(t, fs.WriteFile("data.txt", content))
		require.NoError(t, fs.WriteFile("data.txt", content))

		got, err := fs.ReadFile("data.txt")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("WriteBumpsModified", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		_, err := fs.CreateFile("data.txt", nil)
		require.NoError(t, err)
		before, err := fs.Stat("data.txt")
		require.NoError(t, err)

		require.NoError(t, fs.WriteFile("data.txt", []byte("x")))

		after, err := fs.Stat("data.txt")
		require.NoError(t, err)
		assert.Equal(t, before.CreatedAt, after.CreatedAt, "created time fixed at construction")
		assert.False(t, after.ModifiedAt.Before(before.ModifiedAt))
		assert.False(t, after.ModifiedAt.Before(after.CreatedAt))
	})

	t.Run("WriteToDirectory", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		_, err := fs.CreateDir("docs")
		require.NoError(t, err)

		err = fs.WriteFile("docs", []byte("x"))
		requireCode(t, err, mimicfs.ErrFileNotFound)
	})

	t.Run("ReadMissing", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		_, err := fs.ReadFile("ghost.txt")
		requireCode(t, err, mimicfs.ErrFileNotFound)
	})

	t.Run("ReadDirectory", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		_, err := fs.CreateDir("docs")
		require.NoError(t, err)

		_, err = fs.ReadFile("docs")
		requireCode(t, err, mimicfs.ErrFileNotFound)
	})

	t.Run("ReadReturnsCopy", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		_, err := fs.CreateFile("data.txt", []byte("abc"))
		require.NoError(t, err)

		got, err := fs.ReadFile("data.txt")
		require.NoError(t, err)
		got[0] = 'z'

		again, err := fs.ReadFile("data.txt")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), again, "callers cannot mutate stored content")
	})
}

func TestFileSystem_Delete(t *testing.T) {
	t.Parallel()

	t.Run("File", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		_, err := fs.CreateFile("gone.txt", []byte("x"))
		require.NoError(t, err)

		require.NoError(t, fs.Delete("gone.txt"))

		_, err = fs.Stat("gone.txt")
		requireCode(t, err, mimicfs.ErrFileNotFound)
	})

	t.Run("EmptyDirectory", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		_, err := fs.CreateDir("empty")
		require.NoError(t, err)

		require.NoError(t, fs.Delete("empty"))

		_, err = fs.Stat("empty")
		requireCode(t, err, mimicfs.ErrFileNotFound)
	})

	t.Run("NonEmptyDirectory", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		_, err := fs.CreateDir("full")
		require.NoError(t, err)
		require.NoError(t, fs.ChangeDir("full"))
		_, err = fs.CreateFile("inner.txt", nil)
		require.NoError(t, err)
		require.NoError(t, fs.ChangeDir(".."))

		err = fs.Delete("full")
		requireCode(t, err, mimicfs.ErrDirectoryNotEmpty)

		// directory survives the refused delete
		_, err = fs.Stat("full")
		assert.NoError(t, err)
	})

	t.Run("Missing", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		err := fs.Delete("ghost")
		requireCode(t, err, mimicfs.ErrFileNotFound)
	})

	t.Run("NameReusableAfterDelete", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		_, err := fs.CreateFile("name", nil)
		require.NoError(t, err)
		require.NoError(t, fs.Delete("name"))

		_, err = fs.CreateDir("name")
		assert.NoError(t, err)
	})
}

func TestFileSystem_List(t *testing.T) {
	t.Parallel()

	t.Run("InsertionOrder", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		_, err := fs.CreateFile("zeta.txt", nil)
		require.NoError(t, err)
		_, err = fs.CreateDir("alpha")
		require.NoError(t, err)
		_, err = fs.CreateFile("mid.txt", []byte("123"))
		require.NoError(t, err)

		entries := fs.List()
		require.Len(t, entries, 3)
		assert.Equal(t, "zeta.txt", entries[0].Name)
		assert.Equal(t, "alpha", entries[1].Name)
		assert.Equal(t, "mid.txt", entries[2].Name)
		assert.Equal(t, 3, entries[2].Size)
	})

	t.Run("EmptyDirectory", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		entries := fs.List()
		require.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("ScopedToCurrentDir", func(t *testing.T) {
		t.Parallel()
		fs := newTestFS(t)

		_, err := fs.CreateFile("rootfile.txt", nil)
		require.NoError(t, err)
		_, err = fs.CreateDir("sub")
		require.NoError(t, err)
		require.NoError(t, fs.ChangeDir("sub"))

		assert.Empty(t, fs.List())
	})
}

func TestFileSystem_Stat_Directory(t *testing.T) {
	t.Parallel()

	fs := newTestFS(t)
	_, err := fs.CreateDir("docs")
	require.NoError(t, err)

	info, err := fs.Stat("docs")
	require.NoError(t, err)
	assert.Equal(t, mimicfs.KindDirectory, info.Kind)
	assert.Equal(t, 0, info.Size)
}

func TestFileSystem_CurrentPath_Depths(t *testing.T) {
	t.Parallel()

	fs := newTestFS(t)
	want := "/"
	for i := range 5 {
		name := fmt.Sprintf("d%d", i)
		_, err := fs.CreateDir(name)
		require.NoError(t, err)
		require.NoError(t, fs.ChangeDir(name))
		if want == "/" {
			want += name
		} else {
			want += "/" + name
		}
		assert.Equal(t, want, fs.CurrentPath())
	}
}
