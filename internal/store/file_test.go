package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/finance-tracker/pkg/transaction"
)

// brokenFs fails every open, standing in for permission or disk errors.
type brokenFs struct {
	afero.Fs
}

func (brokenFs) Open(name string) (afero.File, error) {
	return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
}

func (brokenFs) OpenFile(name string, _ int, _ os.FileMode) (afero.File, error) {
	return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
}

func newTx(t *testing.T, date, desc, amount, category string) transaction.Transaction {
	t.Helper()
	tx, err := transaction.New(date, desc, amount, category)
	require.NoError(t, err)
	return tx
}

func TestFile_RoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	f := NewFile("finance_data.txt", WithFs(fs))

	in := []transaction.Transaction{
		newTx(t, "2024-05-01", "rent", "-1000", "housing"),
		newTx(t, "2024-5-15", "gift card", "50.25", "gifts"),
	}
	require.NoError(t, f.Save(in))

	out, err := f.Load()
	require.NoError(t, err)
	require.Len(t, out, 2)
	for i := range in {
		assert.Equal(t, in[i].Date, out[i].Date)
		assert.Equal(t, in[i].Description, out[i].Description)
		assert.True(t, in[i].Amount.Equal(out[i].Amount))
		assert.Equal(t, in[i].Category, out[i].Category)
	}
}

func TestFile_SaveFormat(t *testing.T) {
	fs := afero.NewMemMapFs()
	f := NewFile("data.txt", WithFs(fs))

	require.NoError(t, f.Save([]transaction.Transaction{
		newTx(t, "2024-05-01", "rent", "-1000.00", "housing"),
		newTx(t, "2024-05-02", "coffee", "3.5", "food"),
	}))

	data, err := afero.ReadFile(fs, "data.txt")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01,rent,-1000,housing\n2024-05-02,coffee,3.5,food\n", string(data))

	exists, err := afero.Exists(fs, "data.txt.tmp")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFile_SaveOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	f := NewFile("data.txt", WithFs(fs))

	require.NoError(t, f.Save([]transaction.Transaction{newTx(t, "2024-01-01", "a", "1", "c")}))
	require.NoError(t, f.Save([]transaction.Transaction{newTx(t, "2024-02-02", "b", "2", "c")}))

	out, err := f.Load()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].Description)
}

func TestFile_EmptyRoundTrip(t *testing.T) {
	f := NewFile("data.txt", WithFs(afero.NewMemMapFs()))

	require.NoError(t, f.Save(nil))
	out, err := f.Load()
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFile_LoadMissing(t *testing.T) {
	f := NewFile("nope.txt", WithFs(afero.NewMemMapFs()))

	out, err := f.Load()
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFile_LoadSkipsMalformed(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "2024-01-01,first,10,a\n" +
		"2024-01-02,too,few\n" +
		"2024-01-03,bad amount,ten,a\n" +
		"2024-01-04,too,many,1,fields\n" +
		"\n" +
		"2024-01-05,crlf,-2.5,b\r\n" +
		"2024-01-06,last,3,c"
	require.NoError(t, afero.WriteFile(fs, "data.txt", []byte(content), 0o644))

	out, err := NewFile("data.txt", WithFs(fs)).Load()
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "first", out[0].Description)
	assert.Equal(t, "crlf", out[1].Description)
	assert.Equal(t, "b", out[1].Category)
	assert.Equal(t, "-2.5", out[1].Amount.String())
	assert.Equal(t, "last", out[2].Description)
}

func TestFile_SaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ledger.txt")
	f := NewFile(path)

	require.NoError(t, f.Save([]transaction.Transaction{newTx(t, "2024-01-01", "a", "1", "c")}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01,a,1,c\n", string(data))
}

func TestFile_SaveFailure(t *testing.T) {
	base := afero.NewMemMapFs()
	f := NewFile("data.txt", WithFs(afero.NewReadOnlyFs(base)))

	err := f.Save([]transaction.Transaction{newTx(t, "2024-01-01", "a", "1", "c")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
}

func TestFile_LoadFailure(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "data.txt", []byte("2024-01-01,a,1,c\n"), 0o644))
	f := NewFile("data.txt", WithFs(brokenFs{base}))

	out, err := f.Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIO))
	assert.True(t, errors.Is(err, os.ErrPermission))
	assert.Empty(t, out)
}

func TestFile_LoadSkipsOversizedLine(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "2024-05-01,rent,-1000,housing\n" +
		strings.Repeat("x", 2*1024*1024) + "\n" +
		"2024-05-02,food,-12.5,groceries\n"
	require.NoError(t, afero.WriteFile(fs, "data.txt", []byte(content), 0o644))

	out, err := NewFile("data.txt", WithFs(fs)).Load()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "rent", out[0].Description)
	assert.Equal(t, "food", out[1].Description)
}
