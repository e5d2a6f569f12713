// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-ocr-batch/internal/adapter"
	"github.com/MKhiriev/go-ocr-batch/internal/logger"
	"github.com/MKhiriev/go-ocr-batch/internal/store"
	"github.com/MKhiriev/go-ocr-batch/internal/utils"
	"github.com/MKhiriev/go-ocr-batch/internal/validators"
)

type ClientServices struct {
	EncodeService ClientEncodeService
	SubmitService ClientSubmitService
}

func NewClientServices(storages *store.ClientStorages, processorAdapter adapter.ProcessorAdapter, logger *logger.Logger) *ClientServices {
	encodeSvc := NewClientEncodeService()
	submitSvc := NewClientSubmitService(
		storages.Batch,
		encodeSvc,
		processorAdapter,
		validators.NewSubmitRequestValidator(),
		utils.NewUUIDGenerator(),
		logger,
	)

	return &ClientServices{
		EncodeService: encodeSvc,
		SubmitService: submitSvc,
	}
}
