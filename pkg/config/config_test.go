package config

import "testing"

func TestLoadRequiresSlotBackend(t *testing.T) {
	t.Setenv("TIENDA_APP_ENV", "dev")
	t.Setenv("TIENDA_REDIS_URL", "")
	t.Setenv("TIENDA_USE_MEMORY_SLOTS", "false")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when no slot backend is configured")
	}

	t.Setenv("TIENDA_USE_MEMORY_SLOTS", "true")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.FeatureFlags.UseMemorySlots {
		t.Fatal("memory slots flag should be set")
	}
	if cfg.Slots.CartKey != "cart" || cfg.Slots.WishlistKey != "wishlist" || cfg.Slots.CompareKey != "compare" {
		t.Fatalf("unexpected slot defaults: %+v", cfg.Slots)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("unexpected default port %q", cfg.App.Port)
	}
}

func TestAppEnvHelpers(t *testing.T) {
	app := AppConfig{Env: "DEV"}
	if !app.IsDev() || app.IsProd() {
		t.Fatalf("env helpers broken for %q", app.Env)
	}
}
