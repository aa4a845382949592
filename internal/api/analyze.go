// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nbutton23/zxcvbn-go"

	"pwd-audit/pkg/analyzer"
)

type analyzeApi struct {
	engine *analyzer.Analyzer
}

func (q *analyzeApi) analyzePassword(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := q.engine.Analyze(req.Password)

	reference := zxcvbn.PasswordStrength(req.Password, nil)
	resp := analyzeResponse{
		Report: report,
		Reference: &referenceStrength{
			Score:            reference.Score,
			CrackTime:        reference.CrackTime,
			CrackTimeDisplay: reference.CrackTimeDisplay,
		},
	}

	c.JSON(http.StatusOK, resp)
}

// RegisterAnalyzeApi builds the analysis engine from config and mounts the
// handlers on group.
func RegisterAnalyzeApi(group *gin.RouterGroup, cfg Config) error {
	opts := analyzer.Options{GuessesPerSecond: cfg.GuessesPerSecond}
	if cfg.WordlistFile != "" {
		words, err := analyzer.LoadWordlistFile(cfg.WordlistFile)
		if err != nil {
			return err
		}
		opts.Wordlist = words
	}

	q := &analyzeApi{engine: analyzer.New(opts)}

	group.POST("/password", q.analyzePassword)

	return nil
}
