package asm

import (
	"reflect"
	"testing"
)

func TestBytes(t *testing.T) {
	got, err := Bytes([]string{"A9 42", "", "  ", "8D 00 02"})
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	want := []byte{0xA9, 0x42, 0x8D, 0x00, 0x02}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestBytesInvalidToken(t *testing.T) {
	if _, err := Bytes([]string{"ZZ"}); err == nil {
		t.Errorf("expected an error for a non-hex token, got nil")
	}
}
