package deps

import (
	"os/exec"
	"testing"
)

func TestCheckNotifySend(t *testing.T) {
	status := CheckNotifySend()

	// behavior depends on system - just verify no panic and correct structure
	if status.Installed {
		if status.Path == "" {
			t.Error("installed but path empty")
		}
	} else {
		if status.Path != "" {
			t.Error("not installed but path non-empty")
		}
	}
}

func TestCheckNotifySend_NotInstalled(t *testing.T) {
	_, err := exec.LookPath("notify-send")
	if err != nil {
		status := CheckNotifySend()
		if status.Installed {
			t.Error("expected Installed=false when notify-send not in PATH")
		}
		if status.Path != "" {
			t.Error("expected empty path when not installed")
		}
	} else {
		t.Skip("notify-send is installed, can't test not-installed case")
	}
}

func TestCheckNotifySend_EmptyPath(t *testing.T) {
	t.Setenv("PATH", "")
	status := CheckNotifySend()
	if status.Installed {
		t.Error("nothing can be installed with an empty PATH")
	}
}
