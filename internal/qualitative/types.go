package qualitative

// ClusterResult 는 통합된 의견 그룹 하나다.
type ClusterResult struct {
	// Representative 는 그룹을 대표하는 정규화된 문장이다.
	Representative string `json:"representative"`
	// Display 는 출력용 문자열로, 두 건 이상 합쳐졌으면
	// "대표문장 (공통의견 n)" 형태가 된다.
	Display string `json:"display"`
	// Count 는 이 그룹으로 합쳐진 서로 다른 응답 변형의 수다.
	Count int `json:"count"`
	// Sources 는 그룹에 속한 정규화된 응답 전체다.
	Sources []string `json:"sources"`
}

// PreprocessStats 는 전처리 단계 집계다.
type PreprocessStats struct {
	// Original 는 입력 응답 수.
	Original int `json:"original"`
	// Removed 는 무의미 판정으로 제거된 수.
	Removed int `json:"removed"`
	// Split 는 복합 응답 분리로 늘어난 조각 수.
	Split int `json:"split"`
	// Final 는 전처리 후 남은 응답 수.
	Final int `json:"final"`
}

// Result 는 파이프라인 전체 실행 결과다.
type Result struct {
	Stats    PreprocessStats `json:"stats"`
	Clusters []ClusterResult `json:"clusters"`
}
