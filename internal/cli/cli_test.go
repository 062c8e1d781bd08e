package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = `; sample
top = level
[owner]
name = John Smith
[database]
port = 143
port = 42 # this is not a comment!
`

// run executes the command line args with stdin as standard input and
// returns standard output and standard error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := Command()
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "test.ini")
	require.NoError(t, os.WriteFile(name, []byte(content), 0o600))
	return name
}

func TestDump(t *testing.T) {
	out, _, err := run(t, sample, "dump")
	require.NoError(t, err)
	require.Equal(t, `[] top = level
[owner] name = John Smith
[database] port = 143
[database] port = 42 # this is not a comment!
`, out)
}

func TestDumpShowLines(t *testing.T) {
	name := writeFile(t, sample)
	out, _, err := run(t, "", "dump", "--show-lines", name)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, name+":2: [] top = level", lines[0])
	require.Equal(t, name+":7: [database] port = 42 # this is not a comment!", lines[3])
}

func TestDumpSeveralInputs(t *testing.T) {
	a := writeFile(t, "[a]\nx = 1\n")
	out, _, err := run(t, "[b]\ny = 2\n", "dump", a, "-")
	require.NoError(t, err)
	require.Equal(t, "[a] x = 1\n[b] y = 2\n", out)
}

func TestDumpEncodings(t *testing.T) {
	out, _, err := run(t, "\xEF\xBB\xBF[s]\nk = v\n", "dump")
	require.NoError(t, err)
	require.Equal(t, "[s] k = v\n", out)

	// only the leading mark is skipped, as by the library parser
	out, _, err = run(t, "\xEF\xBB\xBF\xEF\xBB\xBFk = v\n", "dump")
	require.NoError(t, err)
	require.Equal(t, "[] \xEF\xBB\xBFk = v\n", out)

	_, _, err = run(t, "\xFF\xFE[\x00s\x00]\x00", "dump")
	require.ErrorContains(t, err, "unsupported encoding")
}

func TestDumpMaxEntrySize(t *testing.T) {
	_, _, err := run(t, "name = "+strings.Repeat("v", 100), "--max-entry-size", "32", "dump")
	require.ErrorContains(t, err, "out of memory")
}

func TestDumpLogsAtDebug(t *testing.T) {
	_, stderr, err := run(t, "[open\nk = v\n", "dump")
	require.NoError(t, err)
	require.Empty(t, stderr)

	_, stderr, err = run(t, "[open\nk = v\n", "--log.level", "debug", "dump")
	require.NoError(t, err)
	require.Contains(t, stderr, "section header not closed")
	require.Contains(t, stderr, "entries=1")
}

func TestBadLogLevel(t *testing.T) {
	_, _, err := run(t, "", "--log.level", "loud", "dump")
	require.ErrorContains(t, err, "invalid --log.level")
}

func TestGet(t *testing.T) {
	name := writeFile(t, sample)

	out, _, err := run(t, "", "get", name, "owner", "NAME")
	require.NoError(t, err)
	require.Equal(t, "John Smith\n", out)

	out, _, err = run(t, "", "get", name, "", "top")
	require.NoError(t, err)
	require.Equal(t, "level\n", out)

	out, _, err = run(t, "", "get", "--all", name, "database", "port")
	require.NoError(t, err)
	require.Equal(t, "143\n42 # this is not a comment!\n", out)

	_, _, err = run(t, "", "get", name, "Owner", "name")
	require.ErrorIs(t, err, errNotFound)

	_, _, err = run(t, "", "get", name, "owner")
	require.Error(t, err)
}

func TestFmt(t *testing.T) {
	name := writeFile(t, "; c\n[b]\n  x=1\n[a]\ny\n[b]\nz =  2 \n")
	out, _, err := run(t, "", "fmt", name)
	require.NoError(t, err)
	require.Equal(t, "[b]\nx = 1\nz = 2\n\n[a]\ny\n", out)

	_, _, err = run(t, "", "fmt", "-w", name)
	require.NoError(t, err)
	got, err := os.ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, out, string(got))
}

func TestFmtStdin(t *testing.T) {
	out, _, err := run(t, "a=1\n", "fmt", "-w", "-")
	require.NoError(t, err)
	require.Equal(t, "a = 1\n", out)
}

func TestScan(t *testing.T) {
	tests := []struct {
		args []string
		out  string
	}{
		{[]string{"int", "-42abc"}, "3 -42\n"},
		{[]string{"int", "-"}, "0\n"},
		{[]string{"uint", "17"}, "2 17\n"},
		{[]string{"ulong", "18446744073709551615"}, "20 18446744073709551615\n"},
		{[]string{"hex", "ff!"}, "2 FF\n"},
		{[]string{"blank", " \t x"}, "3\n"},
		{[]string{"white", " \n\tx"}, "3\n"},
		{[]string{"text", "hello world", "hello"}, "5\n"},
		{[]string{"until", "key=value", "="}, "3\n"},
		{[]string{"while", "aabbc", "ab"}, "4\n"},
		{[]string{"pat", "GET /index", "GET *"}, "10\n"},
		{[]string{"ip4", "10.1.2.3:80"}, "8 10.1.2.3\n"},
		{[]string{"ip4port", "10.1.2.3:4321"}, "13 10.1.2.3:4321\n"},
		{[]string{"ip4port", "10.1.2.3:"}, "0\n"},
		{[]string{"date", "2005-07-14"}, "10 2005-7-14\n"},
		{[]string{"time", "12:34"}, "5 12:34:0\n"},
	}
	for _, tt := range tests {
		out, _, err := run(t, "", append([]string{"scan", "--"}, tt.args...)...)
		require.NoError(t, err, tt.args)
		require.Equal(t, tt.out, out, tt.args)
	}
}

func TestScanErrors(t *testing.T) {
	_, _, err := run(t, "", "scan", "float", "1.5")
	require.ErrorContains(t, err, "unknown scanner")

	_, _, err = run(t, "", "scan", "pat", "x")
	require.ErrorContains(t, err, "needs an argument")

	_, _, err = run(t, "", "scan", "int", "1", "2")
	require.ErrorContains(t, err, "takes no argument")
}
