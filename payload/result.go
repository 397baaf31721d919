package payload

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CheckResult is the outcome of a single containment check.
type CheckResult struct {
	Range  string `json:"range"`
	Probe  string `json:"probe"`
	Within bool   `json:"within"`
	Error  string `json:"error,omitempty"`
}

// Message renders the result as a human readable sentence.
func (r CheckResult) Message() string {
	if r.Within {
		return fmt.Sprintf("%s is within the range %s", r.Probe, r.Range)
	}
	return fmt.Sprintf("%s is not within the range %s", r.Probe, r.Range)
}

// Encode writes r to w as a single line of JSON.
func Encode(w io.Writer, r CheckResult) error {
	if err := json.NewEncoder(w).Encode(&r); err != nil {
		return errors.Wrap(err, "failed to serialize check result")
	}
	return nil
}
