package test

import (
	"testing"
	"time"

	"github.com/andrei2312/waves-consensus/integration"
)

// Package integration_test verifies that configuration presets behave
// correctly:
//   - Each preset produces distinct, internally consistent configurations,
//     including the MaxTxPerBlock/PrunePeriod knobs the consensus pool
//     actually reads (via cmd/opera/launcher.runForgeDryRun ->
//     opera.Settings).
//   - Presets override default values as expected.
//   - Helper functions (GetPresetByName, ApplyPreset) work correctly.
//   - Edge cases and invalid inputs are handled gracefully.

// TestDefaultPreset_hasReasonableDefaults verifies that DefaultPreset returns
// a configuration with sensible baseline values.
func TestDefaultPreset_hasReasonableDefaults(t *testing.T) {
	cfg := integration.DefaultPreset()

	if cfg.Name != "default" {
		t.Fatalf("Name = %q, want 'default'", cfg.Name)
	}
	if cfg.CacheMB <= 0 || cfg.CacheMB > 10000 {
		t.Fatalf("CacheMB = %d, want value between 1 and 10000", cfg.CacheMB)
	}
	validGCModes := map[string]bool{"light": true, "full": true, "archive": true}
	if !validGCModes[cfg.GCMode] {
		t.Fatalf("GCMode = %q, want one of: light, full, archive", cfg.GCMode)
	}
	if cfg.DBPreset == "" {
		t.Fatal("DBPreset is empty, should have a value")
	}
	if cfg.EnableLightKDF {
		t.Fatal("EnableLightKDF should be false by default for security")
	}

	// MaxTxPerBlock/PrunePeriod feed directly into opera.Settings via
	// ConsensusConfig; a zero value here would silently disable pool
	// packing/pruning for any node that never overrides the preset.
	if cfg.MaxTxPerBlock <= 0 {
		t.Fatalf("MaxTxPerBlock = %d, want a positive block-packing cap", cfg.MaxTxPerBlock)
	}
	if cfg.PrunePeriod <= 0 {
		t.Fatalf("PrunePeriod = %s, want a positive pruning interval", cfg.PrunePeriod)
	}
}

// TestLitePreset_overridesDefaults verifies that LitePreset produces a
// configuration distinct from DefaultPreset, with values optimized for
// development environments.
func TestLitePreset_overridesDefaults(t *testing.T) {
	defaultCfg := integration.DefaultPreset()
	liteCfg := integration.LitePreset()

	if liteCfg.Name != "lite" {
		t.Fatalf("Name = %q, want 'lite'", liteCfg.Name)
	}
	if liteCfg.CacheMB >= defaultCfg.CacheMB {
		t.Fatalf("Lite CacheMB (%d) should be smaller than default (%d)", liteCfg.CacheMB, defaultCfg.CacheMB)
	}
	if liteCfg.GCMode != "archive" {
		t.Fatalf("GCMode = %q, want 'archive' for lite preset", liteCfg.GCMode)
	}
	if !liteCfg.EnableMetrics {
		t.Fatal("EnableMetrics should be true for lite preset")
	}
	if !liteCfg.EnableLightKDF {
		t.Fatal("EnableLightKDF should be true for lite preset (dev convenience)")
	}

	// Lite dev nodes expect light local traffic: a smaller block cap and a
	// tighter prune cadence than the default preset.
	if liteCfg.MaxTxPerBlock >= defaultCfg.MaxTxPerBlock {
		t.Fatalf("Lite MaxTxPerBlock (%d) should be smaller than default (%d)", liteCfg.MaxTxPerBlock, defaultCfg.MaxTxPerBlock)
	}
	if liteCfg.PrunePeriod >= defaultCfg.PrunePeriod {
		t.Fatalf("Lite PrunePeriod (%s) should be shorter than default (%s)", liteCfg.PrunePeriod, defaultCfg.PrunePeriod)
	}
}

// TestFullPreset_overridesDefaults verifies that FullPreset produces a
// production-ready configuration with larger caches and strong security.
func TestFullPreset_overridesDefaults(t *testing.T) {
	defaultCfg := integration.DefaultPreset()
	fullCfg := integration.FullPreset()

	if fullCfg.Name != "full" {
		t.Fatalf("Name = %q, want 'full'", fullCfg.Name)
	}
	if fullCfg.CacheMB <= defaultCfg.CacheMB {
		t.Fatalf("Full CacheMB (%d) should be larger than default (%d)", fullCfg.CacheMB, defaultCfg.CacheMB)
	}
	if fullCfg.GCMode != "full" {
		t.Fatalf("GCMode = %q, want 'full' for full preset", fullCfg.GCMode)
	}
	if !fullCfg.EnableMetrics {
		t.Fatal("EnableMetrics should be true for full preset")
	}
	if !fullCfg.EnableTracing {
		t.Fatal("EnableTracing should be true for full preset")
	}
	if fullCfg.EnableLightKDF {
		t.Fatal("EnableLightKDF should be false for full preset (security)")
	}

	// Full validator nodes match the default block cap and prune cadence.
	if fullCfg.MaxTxPerBlock != defaultCfg.MaxTxPerBlock {
		t.Fatalf("Full MaxTxPerBlock = %d, want default %d", fullCfg.MaxTxPerBlock, defaultCfg.MaxTxPerBlock)
	}
	if fullCfg.PrunePeriod != defaultCfg.PrunePeriod {
		t.Fatalf("Full PrunePeriod = %s, want default %s", fullCfg.PrunePeriod, defaultCfg.PrunePeriod)
	}
}

// TestArchivePreset_overridesDefaults verifies that ArchivePreset produces
// a configuration optimized for historical queries with maximum caching.
func TestArchivePreset_overridesDefaults(t *testing.T) {
	defaultCfg := integration.DefaultPreset()
	archiveCfg := integration.ArchivePreset()

	if archiveCfg.Name != "archive" {
		t.Fatalf("Name = %q, want 'archive'", archiveCfg.Name)
	}
	if archiveCfg.CacheMB <= defaultCfg.CacheMB {
		t.Fatalf("Archive CacheMB (%d) should be larger than default (%d)", archiveCfg.CacheMB, defaultCfg.CacheMB)
	}
	if archiveCfg.GCMode != "archive" {
		t.Fatalf("GCMode = %q, want 'archive' for archive preset", archiveCfg.GCMode)
	}
	if !archiveCfg.EnableMetrics {
		t.Fatal("EnableMetrics should be true for archive preset")
	}
	if !archiveCfg.EnableTracing {
		t.Fatal("EnableTracing should be true for archive preset")
	}
	if archiveCfg.EnableLightKDF {
		t.Fatal("EnableLightKDF should be false for archive preset")
	}

	// Archive nodes index every candidate block, so they accept a heavier
	// per-block cap and a longer prune interval than the default preset.
	if archiveCfg.MaxTxPerBlock <= defaultCfg.MaxTxPerBlock {
		t.Fatalf("Archive MaxTxPerBlock (%d) should be larger than default (%d)", archiveCfg.MaxTxPerBlock, defaultCfg.MaxTxPerBlock)
	}
	if archiveCfg.PrunePeriod <= defaultCfg.PrunePeriod {
		t.Fatalf("Archive PrunePeriod (%s) should be longer than default (%s)", archiveCfg.PrunePeriod, defaultCfg.PrunePeriod)
	}
}

// TestPresets_haveDistinctValues verifies that all presets produce unique
// configurations, including their pool-facing knobs.
func TestPresets_haveDistinctValues(t *testing.T) {
	lite := integration.LitePreset()
	full := integration.FullPreset()
	archive := integration.ArchivePreset()

	names := map[string]bool{
		lite.Name:    true,
		full.Name:    true,
		archive.Name: true,
	}
	if len(names) != 3 {
		t.Fatalf("Presets should have unique names, got: %v", names)
	}

	if lite.CacheMB >= full.CacheMB {
		t.Fatalf("Lite cache (%d) should be smaller than full (%d)", lite.CacheMB, full.CacheMB)
	}
	if full.CacheMB >= archive.CacheMB {
		t.Fatalf("Full cache (%d) should be smaller than archive (%d)", full.CacheMB, archive.CacheMB)
	}

	if lite.GCMode != "archive" || archive.GCMode != "archive" {
		t.Fatal("Lite and archive presets should use archive GC mode")
	}
	if full.GCMode != "full" {
		t.Fatal("Full preset should use full GC mode")
	}

	// Pool-facing knobs should be ordered lite < full < archive, matching
	// the cache-size ordering above.
	if lite.MaxTxPerBlock >= full.MaxTxPerBlock {
		t.Fatalf("Lite MaxTxPerBlock (%d) should be smaller than full (%d)", lite.MaxTxPerBlock, full.MaxTxPerBlock)
	}
	if full.MaxTxPerBlock >= archive.MaxTxPerBlock {
		t.Fatalf("Full MaxTxPerBlock (%d) should be smaller than archive (%d)", full.MaxTxPerBlock, archive.MaxTxPerBlock)
	}
}

// TestGetPresetByName_validPresets verifies that GetPresetByName correctly
// returns the expected preset for all valid preset names.
func TestGetPresetByName_validPresets(t *testing.T) {
	tests := []struct {
		name     string
		wantName string
	}{
		{"lite", "lite"},
		{"full", "full"},
		{"archive", "archive"},
		{"default", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := integration.GetPresetByName(tt.name)
			if err != nil {
				t.Fatalf("GetPresetByName(%q) returned error: %v", tt.name, err)
			}
			if cfg.Name != tt.wantName {
				t.Fatalf("Preset name = %q, want %q", cfg.Name, tt.wantName)
			}
			if cfg.CacheMB <= 0 {
				t.Fatalf("Preset %q has invalid CacheMB: %d", tt.name, cfg.CacheMB)
			}
			if cfg.MaxTxPerBlock <= 0 {
				t.Fatalf("Preset %q has invalid MaxTxPerBlock: %d", tt.name, cfg.MaxTxPerBlock)
			}
			if cfg.PrunePeriod <= 0 {
				t.Fatalf("Preset %q has invalid PrunePeriod: %s", tt.name, cfg.PrunePeriod)
			}
		})
	}
}

// TestGetPresetByName_invalidPreset verifies that GetPresetByName returns
// an error for unrecognized preset names.
func TestGetPresetByName_invalidPreset(t *testing.T) {
	invalidNames := []string{"unknown", "invalid", "", "LITE", "Full"}

	for _, name := range invalidNames {
		t.Run(name, func(t *testing.T) {
			cfg, err := integration.GetPresetByName(name)
			if err == nil {
				t.Fatalf("GetPresetByName(%q) should return error, got config: %+v", name, cfg)
			}
			if err.Error() == "" {
				t.Fatal("Error message should not be empty")
			}
		})
	}
}

// TestApplyPreset_overridesTarget verifies that ApplyPreset correctly merges
// preset values into an existing configuration, overriding only the fields
// that are set in the preset — including MaxTxPerBlock/PrunePeriod.
func TestApplyPreset_overridesTarget(t *testing.T) {
	target := integration.PresetConfig{
		Name:           "custom",
		CacheMB:        512,
		GCMode:         "light",
		DBPreset:       "custom-db",
		EnableMetrics:  false,
		EnableTracing:  false,
		EnableLightKDF: true,
		MaxTxPerBlock:  10,
		PrunePeriod:    5 * time.Second,
	}

	preset := integration.FullPreset()
	integration.ApplyPreset(&target, preset)

	if target.Name != preset.Name {
		t.Fatalf("Name not overridden: got %q, want %q", target.Name, preset.Name)
	}
	if target.CacheMB != preset.CacheMB {
		t.Fatalf("CacheMB not overridden: got %d, want %d", target.CacheMB, preset.CacheMB)
	}
	if target.GCMode != preset.GCMode {
		t.Fatalf("GCMode not overridden: got %q, want %q", target.GCMode, preset.GCMode)
	}
	if target.DBPreset != preset.DBPreset {
		t.Fatalf("DBPreset not overridden: got %q, want %q", target.DBPreset, preset.DBPreset)
	}
	if target.EnableMetrics != preset.EnableMetrics {
		t.Fatalf("EnableMetrics not overridden: got %v, want %v", target.EnableMetrics, preset.EnableMetrics)
	}
	if target.EnableTracing != preset.EnableTracing {
		t.Fatalf("EnableTracing not overridden: got %v, want %v", target.EnableTracing, preset.EnableTracing)
	}
	if target.EnableLightKDF != preset.EnableLightKDF {
		t.Fatalf("EnableLightKDF not overridden: got %v, want %v", target.EnableLightKDF, preset.EnableLightKDF)
	}
	if target.MaxTxPerBlock != preset.MaxTxPerBlock {
		t.Fatalf("MaxTxPerBlock not overridden: got %d, want %d", target.MaxTxPerBlock, preset.MaxTxPerBlock)
	}
	if target.PrunePeriod != preset.PrunePeriod {
		t.Fatalf("PrunePeriod not overridden: got %s, want %s", target.PrunePeriod, preset.PrunePeriod)
	}
}

// TestApplyPreset_partialOverride verifies that ApplyPreset handles partial
// presets correctly (presets with some zero values should only override
// non-zero fields), including MaxTxPerBlock/PrunePeriod.
func TestApplyPreset_partialOverride(t *testing.T) {
	target := integration.DefaultPreset()
	originalName := target.Name
	originalPrunePeriod := target.PrunePeriod

	// Create a partial preset that only sets CacheMB and MaxTxPerBlock.
	partial := integration.PresetConfig{
		CacheMB:       2048,
		MaxTxPerBlock: 7,
		// Name and PrunePeriod are zero, so they shouldn't override.
	}

	integration.ApplyPreset(&target, partial)

	if target.CacheMB != 2048 {
		t.Fatalf("CacheMB should be overridden to 2048, got %d", target.CacheMB)
	}
	if target.MaxTxPerBlock != 7 {
		t.Fatalf("MaxTxPerBlock should be overridden to 7, got %d", target.MaxTxPerBlock)
	}
	if target.Name != originalName {
		t.Fatalf("Name should remain %q when preset has empty name, got %q", originalName, target.Name)
	}
	if target.PrunePeriod != originalPrunePeriod {
		t.Fatalf("PrunePeriod should remain %s when preset leaves it zero, got %s", originalPrunePeriod, target.PrunePeriod)
	}
}

// TestPresets_areIdempotent verifies that calling preset functions multiple
// times returns consistent results. This ensures presets don't have hidden
// state or side effects.
func TestPresets_areIdempotent(t *testing.T) {
	lite1 := integration.LitePreset()
	lite2 := integration.LitePreset()

	full1 := integration.FullPreset()
	full2 := integration.FullPreset()

	archive1 := integration.ArchivePreset()
	archive2 := integration.ArchivePreset()

	if lite1 != lite2 {
		t.Fatal("LitePreset() should return identical results on multiple calls")
	}
	if full1 != full2 {
		t.Fatal("FullPreset() should return identical results on multiple calls")
	}
	if archive1 != archive2 {
		t.Fatal("ArchivePreset() should return identical results on multiple calls")
	}
}
