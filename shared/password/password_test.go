package password_test

import (
	"errors"
	"strings"
	"testing"

	"hotelpos/shared/password"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name        string
		pin         string
		expectError bool
	}{
		{
			name:        "numeric PIN",
			pin:         "1234",
			expectError: false,
		},
		{
			name:        "empty PIN",
			pin:         "",
			expectError: true,
		},
		{
			name:        "long PIN",
			pin:         "12345678",
			expectError: false,
		},
		{
			name:        "PIN longer than the bcrypt input limit",
			pin:         strings.Repeat("1", 100),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.pin)

			if tt.expectError {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				if hash != "" {
					t.Errorf("expected empty hash when error occurs, got %s", hash)
				}

				return
			}

			if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
			if hash == "" {
				t.Error("expected non-empty hash, got empty string")
			}

			if !strings.HasPrefix(hash, "$2a$") && !strings.HasPrefix(hash, "$2b$") && !strings.HasPrefix(hash, "$2y$") {
				t.Errorf("expected bcrypt hash format, got %s", hash)
			}

			if err := password.Verify(tt.pin, hash); err != nil {
				t.Errorf("expected verification to succeed, got error: %v", err)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	testPIN := "4321"
	validHash, err := password.Hash(testPIN)
	if err != nil {
		t.Fatalf("failed to create test hash: %v", err)
	}

	tests := []struct {
		name          string
		pin           string
		hash          string
		expectError   bool
		expectedError error
	}{
		{
			name:        "valid PIN and hash",
			pin:         testPIN,
			hash:        validHash,
			expectError: false,
		},
		{
			name:          "wrong PIN",
			pin:           "9999",
			hash:          validHash,
			expectError:   true,
			expectedError: password.ErrInvalidPIN,
		},
		{
			name:          "empty PIN",
			pin:           "",
			hash:          validHash,
			expectError:   true,
			expectedError: password.ErrInvalidPIN,
		},
		{
			name:          "empty hash",
			pin:           testPIN,
			hash:          "",
			expectError:   true,
			expectedError: password.ErrInvalidPIN,
		},
		{
			name:        "invalid hash format",
			pin:         testPIN,
			hash:        "invalid_hash",
			expectError: true,
		},
		{
			name:        "truncated hash",
			pin:         testPIN,
			hash:        validHash[:10],
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.pin, tt.hash)

			if tt.expectError {
				if err == nil {
					t.Errorf("expected error, got nil")
				} else if tt.expectedError != nil && !errors.Is(err, tt.expectedError) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
			} else if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestHashConsistency(t *testing.T) {
	pin := "1234"

	hashes := make([]string, 5)
	for i := range hashes {
		hash, err := password.Hash(pin)
		if err != nil {
			t.Fatalf("failed to hash PIN: %v", err)
		}
		hashes[i] = hash
	}

	// bcrypt salts every hash
	for i, hash1 := range hashes {
		for j, hash2 := range hashes {
			if i != j && hash1 == hash2 {
				t.Errorf("expected different hashes, got identical: %s", hash1)
			}
		}
	}

	for _, hash := range hashes {
		if err := password.Verify(pin, hash); err != nil {
			t.Errorf("failed to verify PIN with hash %s: %v", hash, err)
		}
	}
}
