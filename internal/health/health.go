package health

import (
	"os"
	"time"

	"github.com/park285/survey-insight-go/internal/config"
	"github.com/park285/survey-insight-go/internal/qualitative"
)

var startTime = time.Now()

// Component 는 상태 구성 요소다.
type Component struct {
	Status string         `json:"status"`
	Detail map[string]any `json:"detail"`
}

// Response 는 상태 응답 본문이다.
type Response struct {
	Status     string               `json:"status"`
	Components map[string]Component `json:"components"`
	Rules      map[string]any       `json:"rules"`
}

// Collect 는 헬스 상태를 수집한다.
func Collect(cfg *config.Config, rules *qualitative.Rules) Response {
	components := make(map[string]Component)

	appStatus := buildAppStatus()
	components["app"] = appStatus

	rulesStatus := buildRulesStatus(cfg, rules)
	components["rules"] = rulesStatus

	overall := "ok"
	for _, component := range components {
		if component.Status != "ok" {
			overall = "degraded"
			break
		}
	}

	return Response{
		Status:     overall,
		Components: components,
		Rules:      rulesStatus.Detail,
	}
}

func buildAppStatus() Component {
	uptimeSeconds := int(time.Since(startTime).Seconds())
	return Component{
		Status: "ok",
		Detail: map[string]any{
			"uptime_seconds": uptimeSeconds,
		},
	}
}

func buildRulesStatus(cfg *config.Config, rules *qualitative.Rules) Component {
	rulesDir := ""
	rulesDirExists := false
	if cfg != nil {
		rulesDir = cfg.Pipeline.RulesDir
		if rulesDir != "" {
			if info, err := os.Stat(rulesDir); err == nil && info.IsDir() {
				rulesDirExists = true
			}
		}
	}

	if rules == nil {
		return Component{
			Status: "degraded",
			Detail: map[string]any{
				"loaded":           false,
				"rules_dir":        rulesDir,
				"rules_dir_exists": rulesDirExists,
			},
		}
	}

	detail := map[string]any{
		"loaded":           true,
		"threshold":        rules.Threshold,
		"rules_dir":        rulesDir,
		"rules_dir_exists": rulesDirExists,
	}
	for name, count := range rules.Summary() {
		detail[name] = count
	}

	return Component{
		Status: "ok",
		Detail: detail,
	}
}
