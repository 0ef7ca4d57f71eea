package main

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRun_FormatsStdin(t *testing.T) {
	code, out, errOut := runCLI(t, `{"a":1,"b":2}`)
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d (%s)", exitOK, code, errOut)
	}
	if expected := "{ \"a\": 1, \"b\": 2 }\n"; out != expected {
		t.Fatalf("unexpected output\nexpected: %q\nactual:   %q", expected, out)
	}
}

func TestRun_StrictJSON(t *testing.T) {
	code, out, _ := runCLI(t, "[1, // c\n2]", "-j")
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}
	if expected := "[ 1, 2 ]\n"; out != expected {
		t.Fatalf("unexpected output\nexpected: %q\nactual:   %q", expected, out)
	}
}

func TestRun_Compact(t *testing.T) {
	code, out, _ := runCLI(t, "{\"a\": 1, // c\n\"b\": [1, 2]}\n[3]", "--compact")
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}
	if expected := "{\"a\":1,\"b\":[1,2]}\n[3]\n"; out != expected {
		t.Fatalf("unexpected output\nexpected: %q\nactual:   %q", expected, out)
	}
}

func TestRun_Check(t *testing.T) {
	formatted := writeTemp(t, "ok.json", "{ \"a\": 1, \"b\": 2 }\n")
	code, out, _ := runCLI(t, "", "--check", formatted)
	if code != exitOK || out != "" {
		t.Fatalf("formatted input: exit %d, output %q", code, out)
	}

	messy := writeTemp(t, "messy.json", "{\"a\":1,\"b\":2}\n")
	code, out, _ = runCLI(t, "", "-c", messy)
	if code != exitFailure {
		t.Fatalf("expected exit %d, got %d", exitFailure, code)
	}
	for _, want := range []string{
		"--- " + messy,
		"-{\"a\":1,\"b\":2}",
		"+{ \"a\": 1, \"b\": 2 }",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("diff missing %q:\n%s", want, out)
		}
	}
	if strings.ContainsRune(out, '\u001b') {
		t.Fatalf("diff to a buffer must not be coloured: %q", out)
	}
}

func TestRun_Write(t *testing.T) {
	path := writeTemp(t, "in.jsonc", "// keep\n{\"a\":[1,2]}")
	code, out, errOut := runCLI(t, "", "-w", path)
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d (%s)", exitOK, code, errOut)
	}
	if out != "" {
		t.Fatalf("--write must not print, got %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if expected := "// keep\n{\n    \"a\": [ 1, 2 ]\n}\n"; string(data) != expected {
		t.Fatalf("unexpected file content\nexpected: %q\nactual:   %q", expected, data)
	}
	st, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if st.Mode().Perm() != 0o600 {
		t.Fatalf("--write changed the file mode to %v", st.Mode().Perm())
	}
}

func TestRun_Output(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	code, out, _ := runCLI(t, "[1,2]", "-o", path)
	if code != exitOK || out != "" {
		t.Fatalf("exit %d, stdout %q", code, out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if expected := "[ 1, 2 ]\n"; string(data) != expected {
		t.Fatalf("unexpected output file\nexpected: %q\nactual:   %q", expected, data)
	}
}

func TestRun_ConfigThenFlags(t *testing.T) {
	cfg := writeTemp(t, "fracjson.yaml", "indent-spaces: 2\nmax-inline-complexity: 0\n")

	code, out, errOut := runCLI(t, `{"a":1}`, "--config", cfg)
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d (%s)", exitOK, code, errOut)
	}
	if expected := "{\n  \"a\": 1\n}\n"; out != expected {
		t.Fatalf("config not applied\nexpected: %q\nactual:   %q", expected, out)
	}

	code, out, _ = runCLI(t, `{"a":1}`, "--config="+cfg, "--indent", "3")
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}
	if expected := "{\n   \"a\": 1\n}\n"; out != expected {
		t.Fatalf("flag must override config\nexpected: %q\nactual:   %q", expected, out)
	}

	code, out, _ = runCLI(t, `{"a":1}`, "--config", cfg, "--indent", "tab")
	if code != exitOK || out != "{\n\t\"a\": 1\n}\n" {
		t.Fatalf("tab indent: exit %d, output %q", code, out)
	}
}

func TestRun_ListPalettes(t *testing.T) {
	code, out, _ := runCLI(t, "", "--list-palettes")
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}
	names := strings.Split(strings.TrimSpace(out), "\n")
	for _, want := range []string{"none", "jq", "default"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("palette %q not listed in %q", want, names)
		}
	}
}

func TestRun_DumpConfig(t *testing.T) {
	code, out, _ := runCLI(t, "", "--dump-config", "--max-line-length", "80", "--eol", "crlf")
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}
	for _, want := range []string{"max-total-line-length: 80", "eol: crlf", "comment-policy: preserve"} {
		if !strings.Contains(out, want) {
			t.Fatalf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestRun_Verbose(t *testing.T) {
	code, _, errOut := runCLI(t, "1", "-v")
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d", exitOK, code)
	}
	if !strings.Contains(errOut, "level=DEBUG msg=processed input=-") {
		t.Fatalf("expected debug log, got %q", errOut)
	}
	if strings.Contains(errOut, "time=") {
		t.Fatalf("log lines must not carry a timestamp: %q", errOut)
	}
}

func TestRun_Failures(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	tests := []struct {
		name  string
		stdin string
		args  []string
		code  int
	}{
		{"unknown flag", "", []string{"--bogus"}, exitUsage},
		{"bad indent", "", []string{"--indent", "wide"}, exitUsage},
		{"bad enum", "", []string{"--eol", "cr"}, exitUsage},
		{"color conflict", "", []string{"--color", "--no-color"}, exitUsage},
		{"unknown palette", "", []string{"--palette", "neon"}, exitUsage},
		{"write and output", "", []string{"-w", "-o", "x.json", "a.json"}, exitUsage},
		{"write stdin", "[1]", []string{"-w"}, exitUsage},
		{"missing config", "", []string{"--config", missing}, exitUsage},
		{"missing input", "", []string{missing}, exitFailure},
		{"syntax error", "{\"a\" 1}", nil, exitFailure},
		{"help", "", []string{"-h"}, exitOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, tt.stdin, tt.args...)
			if code != tt.code {
				t.Fatalf("expected exit %d, got %d (%s)", tt.code, code, errOut)
			}
			if tt.code != exitOK && errOut == "" {
				t.Fatalf("expected a message on stderr")
			}
		})
	}
}

func TestRun_WorstStatusWins(t *testing.T) {
	good := writeTemp(t, "good.json", "[1]")
	missing := filepath.Join(t.TempDir(), "missing.json")
	code, out, _ := runCLI(t, "", good, missing)
	if code != exitFailure {
		t.Fatalf("expected exit %d, got %d", exitFailure, code)
	}
	if out != "[ 1 ]\n" {
		t.Fatalf("the good input must still be written, got %q", out)
	}
}

func TestScanConfigFlag(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, ""},
		{[]string{"--config", "a.yaml", "in.json"}, "a.yaml"},
		{[]string{"-j", "--config=b.yaml"}, "b.yaml"},
		{[]string{"--", "--config", "c.yaml"}, ""},
		{[]string{"--config"}, ""},
	}
	for _, tt := range tests {
		if got := scanConfigFlag(tt.args); got != tt.want {
			t.Fatalf("scanConfigFlag(%q) = %q, expected %q", tt.args, got, tt.want)
		}
	}
}

func TestParseHTTPURL(t *testing.T) {
	tests := []struct {
		raw     string
		isURL   bool
		wantErr bool
	}{
		{"config.json", false, false},
		{"-", false, false},
		{"http://example.com/a.json", true, false},
		{"HTTPS://example.com", true, false},
		{"http://", true, true},
		{"http://exa mple.com/%zz", true, true},
	}
	for _, tt := range tests {
		u, isURL, err := parseHTTPURL(tt.raw)
		if isURL != tt.isURL || (err != nil) != tt.wantErr {
			t.Fatalf("parseHTTPURL(%q) = %v, %v, %v", tt.raw, u, isURL, err)
		}
	}
}

func TestOpenURLAcceptHeaderDefault(t *testing.T) {
	t.Parallel()

	acceptCh := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		acceptCh <- r.Header.Get("Accept")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	parsedURL, isURL, err := parseHTTPURL(server.URL)
	if err != nil {
		t.Fatalf("parseHTTPURL error: %v", err)
	}
	if !isURL {
		t.Fatalf("expected URL to be detected")
	}

	reader, closer, err := openURL(parsedURL, urlOptions{})
	if err != nil {
		t.Fatalf("openURL error: %v", err)
	}
	defer closer.Close()

	if _, err := io.ReadAll(reader); err != nil {
		t.Fatalf("read response: %v", err)
	}

	select {
	case got := <-acceptCh:
		if got != defaultAcceptHeader {
			t.Fatalf("unexpected Accept header: %q", got)
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for Accept header")
	}
}

func TestOpenURLAcceptHeaderAll(t *testing.T) {
	t.Parallel()

	acceptCh := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		acceptCh <- r.Header.Get("Accept")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	code, out, errOut := runCLI(t, "", "--accept-all", server.URL)
	if code != exitOK {
		t.Fatalf("expected exit %d, got %d (%s)", exitOK, code, errOut)
	}
	if expected := "{ \"ok\": true }\n"; out != expected {
		t.Fatalf("unexpected output\nexpected: %q\nactual:   %q", expected, out)
	}

	select {
	case got := <-acceptCh:
		if got != "*/*" {
			t.Fatalf("unexpected Accept header: %q", got)
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for Accept header")
	}
}

func TestOpenURLStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	code, _, errOut := runCLI(t, "", server.URL+"/missing")
	if code != exitFailure {
		t.Fatalf("expected exit %d, got %d", exitFailure, code)
	}
	if !strings.Contains(errOut, "404") {
		t.Fatalf("expected the status in the error, got %q", errOut)
	}
}

func TestOpenURLInsecureHTTPS(t *testing.T) {
	t.Parallel()

	server := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	server.Config.ErrorLog = log.New(io.Discard, "", 0)
	server.StartTLS()
	defer server.Close()

	parsedURL, isURL, err := parseHTTPURL(server.URL)
	if err != nil {
		t.Fatalf("parseHTTPURL error: %v", err)
	}
	if !isURL {
		t.Fatalf("expected URL to be detected")
	}

	if _, _, err := openURL(parsedURL, urlOptions{}); err == nil {
		t.Fatalf("expected TLS error without -k")
	}

	reader, closer, err := openURL(parsedURL, urlOptions{insecure: true})
	if err != nil {
		t.Fatalf("openURL insecure error: %v", err)
	}
	defer closer.Close()

	if _, err := io.ReadAll(reader); err != nil {
		t.Fatalf("read response: %v", err)
	}
}

func TestRewriteRejectsURL(t *testing.T) {
	var stderr bytes.Buffer
	c := &cli{}
	if code := c.rewrite("https://example.com/a.json", nil, &stderr); code != exitUsage {
		t.Fatalf("expected exit %d, got %d", exitUsage, code)
	}
}
