package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

const rescoreLockKey = "jobs:rescore:lock"

type jobListCacheKeyInput struct {
	MinScore float64 `json:"min_score"`
	Limit    int     `json:"limit"`
	Offset   int     `json:"offset"`
}

func JobListCacheKey(params JobListParams) string {
	in := jobListCacheKeyInput{
		MinScore: params.MinScore,
		Limit:    params.Limit,
		Offset:   params.Offset,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "jobs:list:" + hex.EncodeToString(sum[:])
}
