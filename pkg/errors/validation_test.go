package errors

import (
	"testing"
)

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple file", "spark.svg", false},
		{"nested", "out/spark.png", false},
		{"absolute", "/tmp/spark.png", false},
		{"inner dots cleaned", "out/../spark.svg", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"escapes cwd", "../spark.svg", true},
		{"null byte", "spark\x00.svg", true},
		{"newline", "spark\n.svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateOutputPath(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	allowed := map[string]bool{"svg": true, "png": true}

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"svg", "svg", false},
		{"png", "png", false},
		{"empty", "", true},
		{"unknown", "pdf", true},
		{"case sensitive", "SVG", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.input, allowed)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
