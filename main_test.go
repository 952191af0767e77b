package main

import (
	"testing"
)

func TestNewApp_Commands(t *testing.T) {
	app := newApp()

	for _, name := range []string{"map", "query", "bench", "scenes"} {
		if app.Command(name) == nil {
			t.Errorf("Expected command %q to be registered", name)
		}
	}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectError bool
	}{
		{"map enclosed scene", []string{"map", "--scene", "enclosed", "--photons", "200"}, false},
		{"map cornell with exhausted photons", []string{"map", "--scene", "cornell", "--photons", "300", "--record-exhausted"}, false},
		{"query cornell floor", []string{"query", "--scene", "cornell", "--photons", "500", "--point", "277.5,0,277.5"}, false},
		{"bench small sweep", []string{"bench", "--scene", "default", "--counts", "100", "--queries", "50"}, false},
		{"list scenes", []string{"scenes"}, false},
		{"verbose flag", []string{"-v", "scenes"}, false},
		{"very verbose flag", []string{"-vv", "map", "--scene", "enclosed", "--photons", "50"}, false},
		{"version flag", []string{"--version"}, false},

		{"unknown scene", []string{"map", "--scene", "nonexistent"}, true},
		{"zero photons", []string{"map", "--photons", "0"}, true},
		{"negative bounces", []string{"map", "--bounces", "-1"}, true},
		{"query without point", []string{"query", "--photons", "10"}, true},
		{"query with bad point", []string{"query", "--point", "1,2"}, true},
		{"query with zero normal", []string{"query", "--point", "1,2,3", "--normal", "0,0,0"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newApp().Run(append([]string{"photon-mapper"}, tt.args...))

			if tt.expectError && err == nil {
				t.Errorf("Expected error for %v, got none", tt.args)
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error for %v: %v", tt.args, err)
			}
		})
	}
}
