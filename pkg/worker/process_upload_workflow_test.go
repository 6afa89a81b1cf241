package worker

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"
	"go.uber.org/zap"

	qt "github.com/frankban/quicktest"

	"github.com/talkifydocs/ingest-backend/pkg/mock"
	"github.com/talkifydocs/ingest-backend/pkg/repository"
	"github.com/talkifydocs/ingest-backend/pkg/service"
	"github.com/talkifydocs/ingest-backend/pkg/types"

	errorsx "github.com/instill-ai/x/errors"
	errdomain "github.com/talkifydocs/ingest-backend/pkg/errors"
)

func newWorkflowEnv(svc service.Service) (*testsuite.TestWorkflowEnvironment, *Worker) {
	testSuite := &testsuite.WorkflowTestSuite{}
	env := testSuite.NewTestWorkflowEnvironment()

	w, _ := New(Config{Service: svc}, zap.NewNop())
	env.RegisterActivity(w.CreateFileActivity)
	env.RegisterActivity(w.ProcessFileActivity)
	env.RegisterActivity(w.UpdateFileStatusActivity)
	return env, w
}

var testEvent = types.UploadEvent{FileKey: "abc-report.pdf", FileName: "report.pdf", OwnerUID: "kp_42"}

func TestProcessUploadWorkflow_Success(t *testing.T) {
	c := qt.New(t)

	var processed types.FileUIDType
	finished := make(chan finishCall, 1)
	svc := newServiceMock(c).
		ProcessMock.Set(func(_ context.Context, file *repository.FileModel) (int, error) {
			processed = file.UID
			c.Check(file.Key, qt.Equals, testEvent.FileKey)
			return 3, nil
		}).
		FinishMock.Set(finishInto(finished))
	env, w := newWorkflowEnv(svc)

	env.ExecuteWorkflow(w.ProcessUploadWorkflow, ProcessUploadWorkflowParam{Event: testEvent})

	c.Assert(env.IsWorkflowCompleted(), qt.IsTrue)
	c.Assert(env.GetWorkflowError(), qt.IsNil)
	c.Check(svc.StartAfterCounter(), qt.Equals, uint64(1))

	calls := collect(finished)
	c.Assert(calls, qt.HasLen, 1)
	c.Check(calls[0].fileUID, qt.Equals, processed)
	c.Check(calls[0].pageCount, qt.Equals, 3)
	c.Check(calls[0].runErr, qt.IsNil)
}

func TestProcessUploadWorkflow_ProcessFails(t *testing.T) {
	c := qt.New(t)

	finished := make(chan finishCall, 1)
	svc := newServiceMock(c).
		ProcessMock.Return(0, &service.StepError{
			State: service.StateRecordCreated,
			Err:   fmt.Errorf("%w: status 404", errdomain.ErrFetch),
		}).
		FinishMock.Set(finishInto(finished))
	env, w := newWorkflowEnv(svc)

	env.ExecuteWorkflow(w.ProcessUploadWorkflow, ProcessUploadWorkflowParam{Event: testEvent})

	c.Assert(env.IsWorkflowCompleted(), qt.IsTrue)
	c.Assert(env.GetWorkflowError(), qt.Not(qt.IsNil))

	// Not retried.
	c.Check(svc.ProcessAfterCounter(), qt.Equals, uint64(1))

	calls := collect(finished)
	c.Assert(calls, qt.HasLen, 1)
	c.Assert(calls[0].runErr, qt.Not(qt.IsNil))
	c.Check(errorsx.Message(calls[0].runErr), qt.Equals, "The file could not be retrieved from storage.")
}

func TestProcessUploadWorkflow_CreateFails(t *testing.T) {
	c := qt.New(t)

	svc := mock.NewServiceMock(minimock.NewController(c))
	env, w := newWorkflowEnv(svc)
	env.OnActivity(w.CreateFileActivity).
		Return(nil, temporal.NewNonRetryableApplicationError("db down", createFileActivityError, nil))

	env.ExecuteWorkflow(w.ProcessUploadWorkflow, ProcessUploadWorkflowParam{Event: testEvent})

	c.Assert(env.IsWorkflowCompleted(), qt.IsTrue)
	c.Assert(env.GetWorkflowError(), qt.Not(qt.IsNil))
	c.Check(svc.ProcessBeforeCounter(), qt.Equals, uint64(0))
	c.Check(svc.FinishBeforeCounter(), qt.Equals, uint64(0))
}

func TestProcessUploadWorkflow_StatusWriteRetried(t *testing.T) {
	c := qt.New(t)

	svc := newServiceMock(c).ProcessMock.Return(1, nil)
	env, w := newWorkflowEnv(svc)

	attempts := 0
	env.OnActivity(w.UpdateFileStatusActivity).
		Return(func(_ context.Context, param *UpdateFileStatusActivityParam) error {
			attempts++
			if attempts < 3 {
				return errors.New("connection reset")
			}
			c.Check(param.Failed, qt.IsFalse)
			c.Check(param.PageCount, qt.Equals, 1)
			return nil
		})

	env.ExecuteWorkflow(w.ProcessUploadWorkflow, ProcessUploadWorkflowParam{Event: testEvent})

	c.Assert(env.IsWorkflowCompleted(), qt.IsTrue)
	c.Assert(env.GetWorkflowError(), qt.IsNil)
	c.Check(attempts, qt.Equals, 3)
}

func TestProcessUploadWorkflow_ActivityTimeoutMarksFailed(t *testing.T) {
	c := qt.New(t)

	finished := make(chan finishCall, 1)
	svc := newServiceMock(c).FinishMock.Set(finishInto(finished))
	env, w := newWorkflowEnv(svc)
	env.OnActivity(w.ProcessFileActivity).
		Return(nil, temporal.NewTimeoutError(enums.TIMEOUT_TYPE_START_TO_CLOSE, nil))

	env.ExecuteWorkflow(w.ProcessUploadWorkflow, ProcessUploadWorkflowParam{Event: testEvent})

	c.Assert(env.IsWorkflowCompleted(), qt.IsTrue)
	c.Assert(env.GetWorkflowError(), qt.Not(qt.IsNil))

	calls := collect(finished)
	c.Assert(calls, qt.HasLen, 1)
	c.Check(errorsx.Message(calls[0].runErr), qt.Equals, interruptedMessage)
}

func TestWorkflowID(t *testing.T) {
	c := qt.New(t)
	c.Check(WorkflowID("abc-report.pdf"), qt.Equals, "process-upload-abc-report.pdf")
}

func TestStartOptions(t *testing.T) {
	c := qt.New(t)

	opts := StartOptions(testEvent)
	c.Check(opts.ID, qt.Equals, "process-upload-abc-report.pdf")
	c.Check(opts.TaskQueue, qt.Equals, TaskQueue)
	c.Check(opts.WorkflowIDReusePolicy, qt.Equals, enums.WORKFLOW_ID_REUSE_POLICY_REJECT_DUPLICATE)

	// A server-side timeout would leave the record in PROCESSING.
	c.Check(opts.WorkflowExecutionTimeout, qt.Equals, time.Duration(0))
	c.Check(opts.WorkflowRunTimeout, qt.Equals, time.Duration(0))
}
