package main

import (
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/gorewood/texcli/internal/output"
	"github.com/gorewood/texcli/internal/scaffold"
)

// errAborted is returned when the user interrupts a prompt.
var errAborted = output.NewUserError("aborted")

// prompter asks the user for document fields.
type prompter interface {
	Input(message, def string) (string, error)
	Select(message string, options []string, def string) (string, error)
}

// surveyPrompter prompts on the controlling terminal.
type surveyPrompter struct{}

func (surveyPrompter) Input(message, def string) (string, error) {
	var out string
	prompt := &survey.Input{Message: message, Default: def}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (surveyPrompter) Select(message string, options []string, def string) (string, error) {
	var out string
	prompt := &survey.Select{Message: message, Options: options}
	if indexOf(options, def) >= 0 {
		prompt.Default = def
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errAborted
	}
	return err
}

func indexOf(options []string, value string) int {
	for i, option := range options {
		if option == value {
			return i
		}
	}
	return -1
}

// promptRequest asks for each field of req, pre-filled with its current value.
func promptRequest(p prompter, req scaffold.Request, templates []string) (scaffold.Request, error) {
	var err error
	if req.Title, err = p.Input("Title:", req.Title); err != nil {
		return req, err
	}
	if req.Date, err = p.Input("Date:", req.Date); err != nil {
		return req, err
	}
	if req.Author, err = p.Input("Author:", req.Author); err != nil {
		return req, err
	}
	if req.TemplateID, err = p.Select("Template:", templates, req.TemplateID); err != nil {
		return req, err
	}
	return req, nil
}
