package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  a@b.com  \n"))

	got, err := GetSimpleText(reader, "Enter email", &out)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != "a@b.com" {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(out.String(), "Enter email") {
		t.Errorf("prompt not written: %q", out.String())
	}
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("a@b.com"))

	got, err := GetSimpleText(reader, "Enter email", &out)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got != "a@b.com" {
		t.Errorf("got %q", got)
	}
}

func TestGetSimpleText_EmptyEOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader(""))

	if _, err := GetSimpleText(reader, "Enter email", &out); err == nil {
		t.Fatal("expected error on empty EOF")
	}
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("secret"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if pw != "secret" {
		t.Errorf("got %q", pw)
	}
	if !strings.Contains(out.String(), "Enter password:") {
		t.Errorf("prompt not written: %q", out.String())
	}
}
