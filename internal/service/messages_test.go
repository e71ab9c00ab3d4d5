package service_test

import (
	"testing"

	"paybox/internal/service"

	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	testCases := []struct {
		desc     string
		code     string
		contains string
	}{
		{desc: "AuthorizationCenterFailure", code: "00001", contains: "authorization center failed"},
		{desc: "KnownCode", code: "00011", contains: "Incorrect amount"},
		{desc: "RefusalRangeLowerBound", code: "00100", contains: "refused by the authorization center"},
		{desc: "RefusalRange", code: "00150", contains: "refused by the authorization center"},
		{desc: "RefusalRangeUpperBound", code: "00199", contains: "refused by the authorization center"},
		{desc: "AboveRefusalRange", code: "00200", contains: "No information for code 00200"},
		{desc: "UnknownCode", code: "99999", contains: "No information for code 99999"},
		{desc: "NotNumeric", code: "abc", contains: "No information for code abc"},
		{desc: "Empty", code: "", contains: "No information for code"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			require.Contains(t, service.Describe(tc.code), tc.contains)
		})
	}
}
