package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/magpietutor/magpie/tutor"
)

func TestLoadConfigDefault(t *testing.T) {
	configPath = ""
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if len(cfg.Sets) != 1 || cfg.Sets[0].Code != tutor.DefaultSet {
		t.Errorf("loadConfig() sets = %+v", cfg.Sets)
	}
}

func TestSearchWithoutRequest(t *testing.T) {
	configPath = ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"search", "no", "brackets", "here"})

	err := rootCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "no [request] found") {
		t.Errorf("Execute() error = %v", err)
	}
}
