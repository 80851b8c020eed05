package harness

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"surveygate/internal/collab/files"
	"surveygate/internal/collab/forms"
	"surveygate/internal/collab/mail"
	"surveygate/internal/collab/ocrengine"
	"surveygate/internal/collab/sheets"
	"surveygate/internal/intake"
	"surveygate/internal/intake/autofix"
	"surveygate/internal/intake/completeness"
	"surveygate/internal/intake/validate"
	"surveygate/internal/ocr"
	"surveygate/internal/platform/config"
	"surveygate/internal/platform/metrics"
	"surveygate/internal/reconcile"
)

// Runner executes the fixed verification sequence against the wired
// collaborators. Core checks are synchronous; only collaborator calls block.
type Runner struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	cfg     config.Config

	forms  forms.Client
	sheets sheets.Client
	mail   mail.Client
	files  files.Client
	ocr    ocrengine.Client

	recordValidator   *validate.Validator
	responseValidator *validate.Validator
	rowValidator      *validate.Validator
	reconciler        *reconcile.Reconciler
}

// New wires a Runner. metrics may be nil.
func New(
	logger *slog.Logger,
	m *metrics.Metrics,
	cfg config.Config,
	formsClient forms.Client,
	sheetsClient sheets.Client,
	mailClient mail.Client,
	filesClient files.Client,
	ocrClient ocrengine.Client,
) *Runner {
	recordValidator := validate.New()
	return &Runner{
		logger:            logger,
		metrics:           m,
		cfg:               cfg,
		forms:             formsClient,
		sheets:            sheetsClient,
		mail:              mailClient,
		files:             filesClient,
		ocr:               ocrClient,
		recordValidator:   recordValidator,
		responseValidator: validate.NewWithCatalog(intake.ResponseCatalog()),
		rowValidator:      validate.NewWithCatalog(sheets.RowCatalog()),
		reconciler:        reconcile.New(recordValidator),
	}
}

// Run executes the full sequence, appending every result to the caller-owned
// report. Collaborator faults mark the enclosing check ERROR and the run
// continues; nothing here is fatal.
func (r *Runner) Run(ctx context.Context, report *Report) {
	r.record(ctx, report, r.checkFormFields(ctx))
	r.record(ctx, report, r.checkResponseData(ctx))

	r.record(ctx, report, r.checkSheetConnection(ctx))
	r.record(ctx, report, r.checkSheetWrite(ctx))
	r.record(ctx, report, r.checkSheetReadBack(ctx))

	stored, uploadResult := r.checkFileUpload(ctx)
	r.record(ctx, report, uploadResult)
	r.record(ctx, report, r.checkFileFormat())
	r.record(ctx, report, r.checkImageProcessing(ctx, stored.FileID))

	r.record(ctx, report, r.checkImageRecognition(ctx, stored.FileID))
	recognition, ocrResult := r.checkOCRExtraction(ctx, stored.FileID)
	r.record(ctx, report, ocrResult)
	r.record(ctx, report, r.checkAutoFillAccuracy(recognition.Blocks))
	r.record(ctx, report, r.checkReconciliation(recognition.Blocks))

	r.record(ctx, report, r.checkBlankDetection())
	r.record(ctx, report, r.checkAutoFix())
	r.record(ctx, report, r.checkCompleteness())

	r.record(ctx, report, r.checkMailContent())
	r.record(ctx, report, r.checkMailSend(ctx))

	r.record(ctx, report, r.checkParallelCollaborators(ctx))
}

func (r *Runner) record(ctx context.Context, report *Report, result Result) {
	report.Add(result)
	r.metrics.IncCheck(string(result.Status))
	switch result.Status {
	case StatusPass:
		r.logger.InfoContext(ctx, "check passed", "check", result.Name)
	case StatusFail:
		r.logger.WarnContext(ctx, "check failed", "check", result.Name)
	default:
		r.logger.ErrorContext(ctx, "check errored", "check", result.Name, "error", result.Err)
	}
}

func (r *Runner) checkFormFields(ctx context.Context) Result {
	const name = "Form Fields Validation"
	fields, err := r.forms.ListFields(ctx, r.cfg.FormID)
	if err != nil {
		return Result{Name: name, Status: StatusError, Err: err}
	}
	report := forms.ReconcileLabels(forms.ExpectedLabels(), fields)
	status := StatusPass
	if !report.Complete() {
		status = StatusFail
	}
	return Result{Name: name, Status: status, Details: report}
}

func (r *Runner) checkResponseData(_ context.Context) Result {
	const name = "Response Data Validation"
	summary := r.responseValidator.Validate(SampleResponse())
	r.metrics.AddIssues(len(summary.Issues))
	status := StatusPass
	if !summary.Clean() {
		status = StatusFail
	}
	return Result{Name: name, Status: status, Details: summary}
}

func (r *Runner) checkSheetConnection(ctx context.Context) Result {
	const name = "Sheet Connection"
	conn, err := r.sheets.Connect(ctx, r.cfg.SheetID)
	if err != nil {
		return Result{Name: name, Status: StatusError, Err: err}
	}
	return Result{Name: name, Status: StatusPass, Details: conn}
}

func (r *Runner) checkSheetWrite(ctx context.Context) Result {
	const name = "Sheet Data Write"
	write, err := r.sheets.Append(ctx, r.cfg.SheetID, SampleResponse())
	if err != nil {
		return Result{Name: name, Status: StatusError, Err: err}
	}
	status := StatusPass
	if write.RowsWritten == 0 || !write.DataValid {
		status = StatusFail
	}
	return Result{Name: name, Status: status, Details: write}
}

func (r *Runner) checkSheetReadBack(ctx context.Context) Result {
	const name = "Sheet Data Validation"
	rows, err := r.sheets.Rows(ctx, r.cfg.SheetID)
	if err != nil {
		return Result{Name: name, Status: StatusError, Err: err}
	}
	report := sheets.ValidateRows(rows, sheets.DefaultHeaderMapping(), r.rowValidator)
	status := StatusPass
	if !report.Valid() {
		status = StatusFail
	}
	return Result{Name: name, Status: status, Details: report}
}

func (r *Runner) checkFileUpload(ctx context.Context) (files.Stored, Result) {
	const name = "File Upload"
	stored, err := r.files.Upload(ctx, SampleUpload())
	if err != nil {
		return files.Stored{}, Result{Name: name, Status: StatusError, Err: err}
	}
	return stored, Result{Name: name, Status: StatusPass, Details: stored}
}

func (r *Runner) checkFileFormat() Result {
	const name = "File Format Validation"
	report := files.ValidateFormat(SampleUpload())
	status := StatusPass
	if !report.Valid {
		status = StatusFail
	}
	return Result{Name: name, Status: status, Details: report}
}

func (r *Runner) checkImageProcessing(ctx context.Context, fileID string) Result {
	const name = "Image Processing"
	processed, err := r.files.Process(ctx, fileID)
	if err != nil {
		return Result{Name: name, Status: StatusError, Err: err}
	}
	return Result{Name: name, Status: StatusPass, Details: processed}
}

func (r *Runner) checkImageRecognition(ctx context.Context, fileID string) Result {
	const name = "Image Recognition"
	detection, err := r.ocr.Detect(ctx, fileID)
	if err != nil {
		return Result{Name: name, Status: StatusError, Err: err}
	}
	status := StatusPass
	if !detection.HasText {
		status = StatusFail
	}
	return Result{Name: name, Status: status, Details: detection}
}

func (r *Runner) checkOCRExtraction(ctx context.Context, fileID string) (ocrengine.Recognition, Result) {
	const name = "OCR Extraction"
	recognition, err := r.ocr.Recognize(ctx, fileID)
	if err != nil {
		return ocrengine.Recognition{}, Result{Name: name, Status: StatusError, Err: err}
	}
	status := StatusPass
	if len(recognition.Blocks) == 0 || recognition.ExtractedText == "" {
		status = StatusFail
	}
	return recognition, Result{Name: name, Status: status, Details: recognition}
}

func (r *Runner) checkAutoFillAccuracy(blocks []ocr.TextBlock) Result {
	const name = "OCR Auto-Fill"
	extracted := ocr.Extract(blocks)
	match := ocr.Score(extracted, ExpectedScanResult())
	status := StatusPass
	if match.Accuracy < 100 {
		status = StatusFail
	}
	return Result{Name: name, Status: status, Details: match}
}

func (r *Runner) checkReconciliation(blocks []ocr.TextBlock) Result {
	const name = "Auto-Fill Reconciliation"
	outcome := r.reconciler.Reconcile(PartialResponse(), blocks)
	status := StatusPass
	if !outcome.Remaining.Clean() || !outcome.Completeness.IsComplete {
		status = StatusFail
	}
	return Result{Name: name, Status: status, Details: outcome}
}

func (r *Runner) checkBlankDetection() Result {
	const name = "Form Blank Detection"
	summary := r.recordValidator.Validate(FlawedResponse())
	r.metrics.AddIssues(len(summary.Issues))
	// The fixture is flawed on purpose: finding nothing means the detector
	// is broken.
	status := StatusPass
	if summary.Clean() {
		status = StatusFail
	}
	return Result{Name: name, Status: status, Details: summary}
}

func (r *Runner) checkAutoFix() Result {
	const name = "Auto Fix"
	flawed := FlawedResponse()
	summary := r.recordValidator.Validate(flawed)
	proposals := autofix.Propose(flawed, summary.Issues)
	r.metrics.AddCorrections(len(proposals.Fixed))
	status := StatusPass
	if len(proposals.Fixed) == 0 {
		status = StatusFail
	}
	return Result{Name: name, Status: status, Details: proposals}
}

func (r *Runner) checkCompleteness() Result {
	const name = "Form Completeness"
	score := completeness.Evaluate(SampleResponse())
	status := StatusPass
	if !score.IsComplete {
		status = StatusFail
	}
	return Result{Name: name, Status: status, Details: score}
}

func (r *Runner) checkMailContent() Result {
	const name = "Email Content Validation"
	companyKeywords := r.cfg.Mail.CompanyKeywords
	if len(companyKeywords) == 0 {
		companyKeywords = mail.DefaultCompanyKeywords()
	}
	contactKeywords := r.cfg.Mail.ContactKeywords
	if len(contactKeywords) == 0 {
		contactKeywords = mail.DefaultContactKeywords()
	}
	report := mail.ValidateContent(mail.ConfirmationTemplate(), companyKeywords, contactKeywords)
	status := StatusPass
	if !report.Valid {
		status = StatusFail
	}
	return Result{Name: name, Status: status, Details: report}
}

func (r *Runner) checkMailSend(ctx context.Context) Result {
	const name = "Email Sending"
	receipt, err := r.mail.Send(ctx, r.cfg.Mail.Recipient, mail.ConfirmationTemplate())
	if err != nil {
		return Result{Name: name, Status: StatusError, Err: err}
	}
	return Result{Name: name, Status: StatusPass, Details: receipt}
}

// checkParallelCollaborators fans out three independent collaborator calls
// and joins them. Any single fault fails the whole group; there is no
// ordering guarantee among the three.
func (r *Runner) checkParallelCollaborators(ctx context.Context) Result {
	const name = "Parallel Collaborators"
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := r.forms.ListFields(gctx, r.cfg.FormID)
		return err
	})
	g.Go(func() error {
		_, err := r.sheets.Connect(gctx, r.cfg.SheetID)
		return err
	})
	g.Go(func() error {
		_, err := r.ocr.Detect(gctx, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return Result{Name: name, Status: StatusError, Err: err}
	}
	return Result{Name: name, Status: StatusPass}
}
