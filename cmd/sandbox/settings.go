package main

import (
	"encoding/json"

	"github.com/automoto/zsengine/config"
	"github.com/automoto/zsengine/shared/logger"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const settingsKey = "settings"

// SavedSettings represents the sandbox preferences stored on disk
type SavedSettings struct {
	Overlay bool `json:"overlay"`
}

// settingsStore keeps sandbox preferences between runs. A store that failed
// to open silently does nothing.
type settingsStore struct {
	m *gdata.Manager
}

func openSettings() *settingsStore {
	m, err := gdata.Open(gdata.Config{
		AppName: "zsengine-sandbox",
	})
	if err != nil {
		logger.L().Warn("could not initialize persistence", zap.Error(err))
		return &settingsStore{}
	}
	return &settingsStore{m: m}
}

// Load applies saved settings to the global config. It reports whether
// anything was found.
func (s *settingsStore) Load() bool {
	if s.m == nil {
		return false
	}

	data, err := s.m.LoadItem(settingsKey)
	if err != nil || data == nil {
		return false
	}

	var saved SavedSettings
	if err := json.Unmarshal(data, &saved); err != nil {
		logger.L().Warn("could not parse saved settings", zap.Error(err))
		return false
	}

	config.Debug.Overlay = saved.Overlay
	return true
}

func (s *settingsStore) Save() {
	if s.m == nil {
		return
	}

	data, err := json.Marshal(SavedSettings{Overlay: config.Debug.Overlay})
	if err != nil {
		logger.L().Warn("could not serialize settings", zap.Error(err))
		return
	}
	if err := s.m.SaveItem(settingsKey, data); err != nil {
		logger.L().Warn("could not save settings", zap.Error(err))
	}
}
