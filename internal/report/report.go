// Package report 는 통합 결과를 JSON / Excel / CSV 문서로 만든다.
package report

import (
	"time"

	"github.com/park285/survey-insight-go/internal/qualitative"
)

// QuestionReport 는 주관식 문항 하나의 통합 결과다.
type QuestionReport struct {
	Question string                      `json:"question"`
	Stats    qualitative.PreprocessStats `json:"stats"`
	Clusters []qualitative.ClusterResult `json:"clusters"`
	Warnings []string                    `json:"warnings,omitempty"`
}

// FileReport 는 설문 파일 하나의 처리 결과다.
type FileReport struct {
	File        string           `json:"file"`
	GeneratedAt time.Time        `json:"generated_at"`
	Charset     string           `json:"charset,omitempty"`
	Questions   []QuestionReport `json:"questions"`
}

// GroupCount 는 파일 전체의 그룹 수 합이다.
func (r *FileReport) GroupCount() int {
	total := 0
	for _, question := range r.Questions {
		total += len(question.Clusters)
	}
	return total
}
