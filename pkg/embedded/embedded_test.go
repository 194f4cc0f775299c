package embedded

import (
	"testing"
	"testing/fstest"
)

func setupTestFS(t *testing.T) {
	t.Helper()
	Init(fstest.MapFS{
		"data/effects.yaml":           {Data: []byte("clock:\n  rate: 0.05\n")},
		"data/shaders/shockwave.kage": {Data: []byte("//kage:unit pixels\npackage main\n")},
		"data/shaders/displace.kage":  {Data: []byte("//kage:unit pixels\npackage main\n")},
	})
	t.Cleanup(func() {
		dataFS = nil
		initialized = false
	})
}

func TestIsInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false for a nil FS")
	}

	setupTestFS(t)
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

func TestReadFileNotInitialized(t *testing.T) {
	Init(nil)
	if _, err := ReadFile("data/effects.yaml"); err == nil {
		t.Error("Expected error when package is not initialized")
	}
}

func TestReadFile(t *testing.T) {
	setupTestFS(t)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"标准路径", "data/effects.yaml", false},
		{"带 ./ 前缀", "./data/effects.yaml", false},
		{"未知前缀", "assets/effects.yaml", true},
		{"文件不存在", "data/missing.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Errorf("ReadFile(%q) returned empty data", tt.path)
			}
		})
	}
}
