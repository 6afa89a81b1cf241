package types

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestFileProcessStatus(t *testing.T) {
	c := qt.New(t)

	testCases := []struct {
		status   FileProcessStatus
		terminal bool
		valid    bool
	}{
		{status: FileProcessStatusProcessing, terminal: false, valid: true},
		{status: FileProcessStatusSuccess, terminal: true, valid: true},
		{status: FileProcessStatusFailed, terminal: true, valid: true},
		{status: "DONE", terminal: false, valid: false},
		{status: "", terminal: false, valid: false},
	}

	for _, tc := range testCases {
		c.Run(string(tc.status), func(c *qt.C) {
			c.Check(tc.status.IsTerminal(), qt.Equals, tc.terminal)
			c.Check(tc.status.IsValid(), qt.Equals, tc.valid)
		})
	}
}

func TestUploadEvent_Validate(t *testing.T) {
	c := qt.New(t)

	c.Run("ok", func(c *qt.C) {
		e := UploadEvent{FileKey: "abc-123.pdf", FileName: "report.pdf", OwnerUID: "kp_42"}
		c.Check(e.Validate(), qt.IsNil)
	})

	c.Run("missing fields are listed", func(c *qt.C) {
		e := UploadEvent{FileName: "report.pdf", OwnerUID: "  "}
		c.Check(e.Validate(), qt.ErrorMatches, "missing fields: fileKey, ownerId")
	})
}
