package password

import (
	"strings"
	"testing"
)

func TestExact_TextoPlano(t *testing.T) {
	c := Exact{}
	if !c.Compare("12345", "12345") {
		t.Fatalf("expected match")
	}
	if c.Compare("12345", "12346") || c.Compare("12345", "") {
		t.Fatalf("expected mismatch")
	}
}

func TestArgon2id_RoundTrip(t *testing.T) {
	hash, err := Hash(Default, "12345")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Fatalf("unexpected PHC prefix: %s", hash)
	}

	c := Argon2id{}
	if !c.Compare(hash, "12345") {
		t.Fatalf("expected match")
	}
	if c.Compare(hash, "otra") {
		t.Fatalf("expected mismatch")
	}
}

func TestArgon2id_SaltDistintaPorHash(t *testing.T) {
	h1, err := Hash(Default, "12345")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	h2, err := Hash(Default, "12345")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected hashes distintos por salt aleatoria")
	}
}

func TestArgon2id_RechazaFormatosRotos(t *testing.T) {
	c := Argon2id{}
	casos := []string{
		"",
		"12345",
		"$argon2i$v=19$m=65536,t=3,p=1$abc$def",
		"$argon2id$v=19$m=65536,t=3,p=1$abc",
		"$argon2id$v=19$basura$abc$def",
	}
	for _, s := range casos {
		if c.Compare(s, "12345") {
			t.Fatalf("expected mismatch para %q", s)
		}
	}
}

func TestHash_RechazaClaveVacia(t *testing.T) {
	if _, err := Hash(Default, ""); err == nil {
		t.Fatalf("expected error con clave vacía")
	}
}
