// Package tui provides a single form alternative to the line prompts, for people who prefer to fill in fields.
package tui

import (
	"errors"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/rivo/tview"

	"github.com/saylorsolutions/xorimg/internal/session"
	"github.com/saylorsolutions/xorimg/pkg/transform"
	"github.com/saylorsolutions/xorimg/pkg/xor"
)

const (
	labelAction = "Action"
	labelMode   = "Mode"
	labelKey    = "Key"
	labelFile   = "File"
)

var (
	directions = []string{string(transform.Encrypt), string(transform.Decrypt)}
	modes      = []string{transform.ByteMode.String(), transform.PixelMode.String()}
)

// Fields holds the raw text of the form.
type Fields struct {
	Action string
	Mode   string
	Key    string
	File   string
}

// Request validates form fields and turns them into a transform.Request.
func (f Fields) Request() (transform.Request, error) {
	dir, err := transform.ParseDirection(f.Action)
	if err != nil {
		return transform.Request{}, err
	}
	mode, err := transform.ParseMode(f.Mode)
	if err != nil {
		return transform.Request{}, err
	}
	key, err := xor.ParseKey(f.Key)
	if err != nil {
		return transform.Request{}, err
	}
	file := strings.TrimSpace(f.File)
	if len(file) == 0 {
		return transform.Request{}, errors.New("a file path is required")
	}
	return transform.Request{
		Mode:      mode,
		Direction: dir,
		Key:       key,
		Source:    file,
	}, nil
}

// Submit runs the Fields and returns the message to show in the status area.
func Submit(runner *transform.Runner, fields Fields) string {
	req, err := fields.Request()
	if err != nil {
		return session.FormatError(req, err)
	}
	res, err := runner.Run(req)
	if err != nil {
		return session.FormatError(req, err)
	}
	return session.FormatResult(req, res)
}

// Run shows the form until the user quits.
func Run(runner *transform.Runner, mode transform.Mode, logger hclog.Logger) error {
	if runner == nil {
		return errors.New("nil runner")
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	app := tview.NewApplication()
	status := tview.NewTextView().
		SetWrap(true).
		SetText("Fill in the form and select Run.")
	status.SetBorder(true).SetTitle("Status")

	form := tview.NewForm().
		AddDropDown(labelAction, directions, 0, nil).
		AddDropDown(labelMode, modes, int(mode), nil).
		AddInputField(labelKey, "", 24, nil, nil).
		AddInputField(labelFile, "", 64, nil, nil)
	form.AddButton("Run", func() {
		fields := readFields(form)
		logger.Debug("Form submitted", "action", fields.Action, "mode", fields.Mode, "file", fields.File)
		status.SetText(Submit(runner, fields))
	})
	form.AddButton("Quit", app.Stop)
	form.SetBorder(true).SetTitle(session.Banner(mode))

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(status, 5, 0, false)
	return app.SetRoot(layout, true).EnableMouse(true).Run()
}

func readFields(form *tview.Form) Fields {
	var fields Fields
	if dd, ok := form.GetFormItemByLabel(labelAction).(*tview.DropDown); ok {
		_, fields.Action = dd.GetCurrentOption()
	}
	if dd, ok := form.GetFormItemByLabel(labelMode).(*tview.DropDown); ok {
		_, fields.Mode = dd.GetCurrentOption()
	}
	if in, ok := form.GetFormItemByLabel(labelKey).(*tview.InputField); ok {
		fields.Key = in.GetText()
	}
	if in, ok := form.GetFormItemByLabel(labelFile).(*tview.InputField); ok {
		fields.File = in.GetText()
	}
	return fields
}
