// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}

	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

// testRequest mirrors the shape of API request models: pointer fields with
// json tags so "required" means key presence, not non-zero value.
type testRequest struct {
	Budget     *float64 `json:"budget" validate:"required"`
	CurrentGPU *string  `json:"currentGpu" validate:"required"`
	Resolution *string  `json:"resolution" validate:"required,oneof=1080p 1440p 4K"`
	VRAMGB     *float64 `json:"vramGb" validate:"omitempty,gte=0"`
	CPUCores   *int     `json:"cpuCores" validate:"omitempty,gt=0"`
}

func validTestRequest() testRequest {
	budget := 500.0
	gpu := "GTX 1060"
	res := "1080p"
	return testRequest{
		Budget:     &budget,
		CurrentGPU: &gpu,
		Resolution: &res,
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*testRequest)
	}{
		{
			name:   "required fields only",
			mutate: func(r *testRequest) {},
		},
		{
			name: "empty string still present",
			mutate: func(r *testRequest) {
				empty := ""
				r.CurrentGPU = &empty
			},
		},
		{
			name: "optional fields set",
			mutate: func(r *testRequest) {
				vram := 8.0
				cores := 6
				r.VRAMGB = &vram
				r.CPUCores = &cores
			},
		},
		{
			name: "zero vram allowed",
			mutate: func(r *testRequest) {
				vram := 0.0
				r.VRAMGB = &vram
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validTestRequest()
			tt.mutate(&req)

			if err := ValidateStruct(&req); err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*testRequest)
		wantField string
		wantTag   string
	}{
		{
			name:      "missing budget",
			mutate:    func(r *testRequest) { r.Budget = nil },
			wantField: "budget",
			wantTag:   "required",
		},
		{
			name:      "missing currentGpu",
			mutate:    func(r *testRequest) { r.CurrentGPU = nil },
			wantField: "currentGpu",
			wantTag:   "required",
		},
		{
			name: "unknown resolution",
			mutate: func(r *testRequest) {
				res := "720p"
				r.Resolution = &res
			},
			wantField: "resolution",
			wantTag:   "oneof",
		},
		{
			name: "negative vram",
			mutate: func(r *testRequest) {
				vram := -4.0
				r.VRAMGB = &vram
			},
			wantField: "vramGb",
			wantTag:   "gte",
		},
		{
			name: "zero cores",
			mutate: func(r *testRequest) {
				cores := 0
				r.CPUCores = &cores
			},
			wantField: "cpuCores",
			wantTag:   "gt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validTestRequest()
			tt.mutate(&req)

			err := ValidateStruct(&req)
			if err == nil {
				t.Fatal("ValidateStruct() should have returned an error")
			}

			found := false
			for _, e := range err.Errors() {
				if e.Field() == tt.wantField && e.Tag() == tt.wantTag {
					found = true
					break
				}
			}

			if !found {
				t.Errorf("Expected error on field %s with tag %s, got: %v",
					tt.wantField, tt.wantTag, err.Errors())
			}
		})
	}
}

func TestMissingFields(t *testing.T) {
	req := validTestRequest()
	req.Budget = nil
	req.Resolution = nil

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	missing := err.MissingFields()
	if len(missing) != 2 {
		t.Fatalf("MissingFields() = %v, want 2 entries", missing)
	}
	if missing[0] != "budget" || missing[1] != "resolution" {
		t.Errorf("MissingFields() = %v, want [budget resolution]", missing)
	}
}

func TestMissingFields_NoneForOtherTags(t *testing.T) {
	req := validTestRequest()
	res := "720p"
	req.Resolution = &res

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	if missing := err.MissingFields(); len(missing) != 0 {
		t.Errorf("MissingFields() = %v, want empty for non-required failures", missing)
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	req := validTestRequest()
	req.Budget = nil

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()

	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Message != "budget is required" {
		t.Errorf("Message = %q, want 'budget is required'", apiErr.Message)
	}
	if apiErr.Details["field"] != "budget" {
		t.Errorf("Details[field] = %v, want budget", apiErr.Details["field"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	req := validTestRequest()
	req.Budget = nil
	req.CurrentGPU = nil

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()

	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "budget") || !strings.Contains(apiErr.Message, "currentGpu") {
		t.Errorf("Message = %q, want both field names", apiErr.Message)
	}

	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("Details[fields] has unexpected type %T", apiErr.Details["fields"])
	}
	if len(fields) != 2 {
		t.Errorf("Details[fields] has %d entries, want 2", len(fields))
	}
}

func TestTranslatedMessages(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*testRequest)
		wantMsg string
	}{
		{
			name: "oneof includes allowed values",
			mutate: func(r *testRequest) {
				res := "8K"
				r.Resolution = &res
			},
			wantMsg: "resolution must be one of: 1080p 1440p 4K",
		},
		{
			name: "gte includes bound",
			mutate: func(r *testRequest) {
				vram := -1.0
				r.VRAMGB = &vram
			},
			wantMsg: "vramGb must be greater than or equal to 0",
		},
		{
			name: "gt includes bound",
			mutate: func(r *testRequest) {
				cores := -2
				r.CPUCores = &cores
			},
			wantMsg: "cpuCores must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validTestRequest()
			tt.mutate(&req)

			err := ValidateStruct(&req)
			if err == nil {
				t.Fatal("expected validation error")
			}

			found := false
			for _, e := range err.Errors() {
				if e.Error() == tt.wantMsg {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected message %q, got: %v", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestValidateStruct_ErrorString(t *testing.T) {
	req := validTestRequest()
	req.Budget = nil
	req.CurrentGPU = nil

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "budget is required") {
		t.Errorf("Error() = %q, want budget message", msg)
	}
	if !strings.Contains(msg, "currentGpu is required") {
		t.Errorf("Error() = %q, want currentGpu message", msg)
	}
}
