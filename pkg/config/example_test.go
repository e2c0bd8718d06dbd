package config_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/walteh/cipha/pkg/config"
)

func ExampleLoad() {
	dir, err := os.MkdirTemp("", "cipha-config")
	if err != nil {
		fmt.Printf("Error creating dir: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, ".cipha.yaml")
	content := "cipher: railfence\nrails: 4\nbatch:\n  suffix: .rf\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		fmt.Printf("Error writing config: %v\n", err)
		return
	}

	cfg, err := config.Load(context.Background(), path)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	fmt.Println(cfg)
	fmt.Println(cfg.Batch.Suffix)
	// Output:
	// cipher=railfence shift=3 rails=4 strict=false
	// .rf
}
