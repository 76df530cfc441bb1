// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-log-monitor/models"

type appInfoService struct {
	buildInfo models.AppBuildInfo
}

// NewAppInfoService returns an [AppInfoService] reporting buildInfo. Empty
// fields are shown as "N/A".
func NewAppInfoService(buildInfo models.AppBuildInfo) AppInfoService {
	return &appInfoService{buildInfo: buildInfo.WithFallback(models.BuildInfoNotAvailable)}
}

func (s *appInfoService) BuildInfo() models.AppBuildInfo {
	return s.buildInfo
}
