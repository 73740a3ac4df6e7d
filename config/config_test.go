package config

import (
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	file := filepath.Join(t.TempDir(), "config.json")
	err := cfg.WriteFile(file)
	if err != nil {
		t.Fatal(err)
	}

	err = cfg.Set("contract.endPoint", "https://rpc.sepolia.org")
	if err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if got.API.APIAddress != cfg.API.APIAddress {
		t.Fatal("api address mismatch")
	}
}

func TestConfigSetGet(t *testing.T) {
	cfg := NewDefaultConfig()

	err := cfg.Set("contract.tokenContract", `"0x5FbDB2315678afecb367f032d93F642f64180aa3"`)
	if err != nil {
		t.Fatal(err)
	}

	v, err := cfg.Get("contract.tokenContract")
	if err != nil {
		t.Fatal(err)
	}
	if v.(string) != "0x5FbDB2315678afecb367f032d93F642f64180aa3" {
		t.Fatal("unexpected value", v)
	}

	// malformed address is rejected by the validator
	err = cfg.Set("contract.tokenContract", `"not-an-address"`)
	if err == nil {
		t.Fatal("expected validation error")
	}
}
