//go:build darwin

package darwin

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"

	"github.com/anstadnik/AppearanceNotifier/internal/platform"
)

const plistTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>Label</key>
    <string>%s</string>
    <key>ProgramArguments</key>
    <array>
        <string>%s</string>%s
    </array>
    <key>RunAtLoad</key>
    <%s/>
    <key>KeepAlive</key>
    <%s/>
    <key>StandardOutPath</key>
    <string>%s</string>
    <key>StandardErrorPath</key>
    <string>%s</string>
</dict>
</plist>
`

// SchedulerService manages the observer launchd agent.
type SchedulerService struct{}

// NewSchedulerService creates a new launchd scheduler service.
func NewSchedulerService() *SchedulerService {
	return &SchedulerService{}
}

func (s *SchedulerService) IsSupported() bool {
	return true
}

func (s *SchedulerService) Install(config platform.SchedulerConfig) error {
	plistPath, err := s.getPlistPath(config.Label)
	if err != nil {
		return fmt.Errorf("failed to get plist path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(plistPath), 0755); err != nil {
		return fmt.Errorf("failed to create LaunchAgents directory: %w", err)
	}

	if config.LogPath != "" {
		if err := os.MkdirAll(filepath.Dir(config.LogPath), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	if _, err := os.Stat(plistPath); err == nil {
		_ = exec.Command("launchctl", "unload", plistPath).Run()
	}

	argsStr := ""
	for _, arg := range config.Args {
		argsStr += fmt.Sprintf("\n        <string>%s</string>", arg)
	}

	runAtLoad := "false"
	if config.RunAtLoad {
		runAtLoad = "true"
	}
	keepAlive := "false"
	if config.KeepAlive {
		keepAlive = "true"
	}

	plistContent := fmt.Sprintf(plistTemplate,
		config.Label,
		config.Command,
		argsStr,
		runAtLoad,
		keepAlive,
		config.LogPath,
		config.LogPath,
	)

	if err := os.WriteFile(plistPath, []byte(plistContent), 0644); err != nil {
		return fmt.Errorf("failed to write plist: %w", err)
	}

	if output, err := exec.Command("launchctl", "load", plistPath).CombinedOutput(); err != nil {
		return fmt.Errorf("failed to load agent: %w (output: %s)", err, string(output))
	}

	return nil
}

func (s *SchedulerService) Uninstall(label string) error {
	plistPath, err := s.getPlistPath(label)
	if err != nil {
		return fmt.Errorf("failed to get plist path: %w", err)
	}

	if _, err := os.Stat(plistPath); os.IsNotExist(err) {
		return nil
	}

	_ = exec.Command("launchctl", "unload", plistPath).Run()

	if err := os.Remove(plistPath); err != nil {
		return fmt.Errorf("failed to remove plist: %w", err)
	}

	return nil
}

func (s *SchedulerService) Status(label string) (platform.SchedulerStatus, error) {
	plistPath, err := s.getPlistPath(label)
	if err != nil {
		return platform.SchedulerStatus{}, fmt.Errorf("failed to get plist path: %w", err)
	}

	status := platform.SchedulerStatus{}

	if _, err := os.Stat(plistPath); os.IsNotExist(err) {
		return status, nil
	}
	status.Installed = true

	cmd := exec.Command("launchctl", "list", label)
	status.Running = cmd.Run() == nil

	if logPath, err := s.parsePlist(plistPath); err == nil {
		status.LogPath = logPath
	}

	return status, nil
}

func (s *SchedulerService) getPlistPath(label string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Library", "LaunchAgents", label+".plist"), nil
}

func (s *SchedulerService) parsePlist(plistPath string) (string, error) {
	data, err := os.ReadFile(plistPath)
	if err != nil {
		return "", err
	}

	logRe := regexp.MustCompile(`<key>StandardOutPath</key>\s*<string>([^<]+)</string>`)
	matches := logRe.FindStringSubmatch(string(data))
	if len(matches) < 2 {
		return "", fmt.Errorf("no StandardOutPath in plist")
	}

	return matches[1], nil
}
