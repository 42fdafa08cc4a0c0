package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/zealdump/internal/gbcart"
)

func TestHeaderForSize(t *testing.T) {
	h, err := headerForSize(32768, gbcart.BankSizeSRAM)
	if err != nil {
		t.Fatalf("header for 32 KB save: %v", err)
	}
	if h.BankCount != 4 || h.BankSize != 8192 {
		t.Fatalf("unexpected header: %+v", h)
	}

	h, err = headerForSize(512, gbcart.BankSizeMBC2)
	if err != nil {
		t.Fatalf("header for MBC2 save: %v", err)
	}
	if h.BankCount != 1 || h.BankSize != 512 {
		t.Fatalf("unexpected MBC2 header: %+v", h)
	}
}

func TestHeaderForSizeRejectsRaggedSaves(t *testing.T) {
	if _, err := headerForSize(8191, gbcart.BankSizeSRAM); err == nil {
		t.Fatalf("expected error for ragged save size")
	}
	if _, err := headerForSize(300*8192, gbcart.BankSizeSRAM); err == nil {
		t.Fatalf("expected error for too many banks")
	}
	if _, err := headerForSize(8192, 0); err == nil {
		t.Fatalf("expected error for zero bank size")
	}
}

func TestBuildSessionGeneratesPattern(t *testing.T) {
	cfg, err := buildSession(options{banks: 2, bankSize: 256})
	if err != nil {
		t.Fatalf("build session: %v", err)
	}
	if cfg.Header.BankCount != 2 || cfg.Header.BankSize != 256 {
		t.Fatalf("unexpected header: %+v", cfg.Header)
	}
	if len(cfg.Payload) != 512 {
		t.Fatalf("unexpected payload size: %d", len(cfg.Payload))
	}
	if cfg.Payload[0] != 0x00 || cfg.Payload[255] != 0xFF || cfg.Payload[256] != 0x00 {
		t.Fatalf("unexpected pattern bytes: % x", cfg.Payload[:4])
	}
}

func TestBuildSessionReadsSaveFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.sav")
	payload := make([]byte, 2*8192)
	for i := range payload {
		payload[i] = byte(i % 7)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write save file: %v", err)
	}

	cfg, err := buildSession(options{input: path, bankSize: gbcart.BankSizeSRAM})
	if err != nil {
		t.Fatalf("build session: %v", err)
	}
	if cfg.Header.BankCount != 2 || cfg.Header.BankSize != 8192 {
		t.Fatalf("unexpected header: %+v", cfg.Header)
	}
	if len(cfg.Payload) != len(payload) {
		t.Fatalf("unexpected payload size: %d", len(cfg.Payload))
	}
}
