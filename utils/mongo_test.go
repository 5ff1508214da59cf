package utils

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsNoDocuments(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{mongo.ErrNoDocuments, true},
		{fmt.Errorf("decoding: %w", mongo.ErrNoDocuments), true},
		{errors.New("server selection error"), false},
		{nil, false},
	}

	for _, tc := range cases {
		if got := IsNoDocuments(tc.err); got != tc.want {
			t.Errorf("IsNoDocuments(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}
