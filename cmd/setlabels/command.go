// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"github.com/BrunoReboul/cas/services/setlabels"
	"github.com/BrunoReboul/cas/utilities/ask"
	"github.com/BrunoReboul/cas/utilities/ffo"
	"github.com/BrunoReboul/cas/utilities/gcs"
	"github.com/BrunoReboul/cas/utilities/gfs"
	"github.com/BrunoReboul/cas/utilities/grm"
	"github.com/BrunoReboul/cas/utilities/lbl"
	"github.com/BrunoReboul/cas/utilities/logging"
	"github.com/BrunoReboul/cas/utilities/solution"
	"github.com/BrunoReboul/cas/utilities/validater"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

type options struct {
	uri          string
	environment  string
	settingsPath string
	batch        bool
	clear        bool
	apply        bool
	auditProject string
	record       bool
}

func newCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "setlabels [uri]",
		Short:         "Clear and set cloud project labels from a CSV file",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && opts.uri == "" {
				opts.uri = args[0]
			}
			return run(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.uri, "uri", "u", "", "CSV location "+gcs.ExpectedPattern+", file:// or a local path")
	flags.StringVarP(&opts.environment, "environment", "e", "", "environment name used to situate settings")
	flags.StringVarP(&opts.settingsPath, "settings", "s", "", "solution settings YAML file")
	flags.BoolVar(&opts.batch, "batch", false, "do not prompt, confirmations come from --clear and --apply")
	flags.BoolVar(&opts.clear, "clear", false, "with --batch, clear the labels of labeled projects")
	flags.BoolVar(&opts.apply, "apply", false, "with --batch, apply the CSV labels")
	flags.StringVar(&opts.auditProject, "audit-project", "", "project receiving the "+logging.AuditLogName+" log, overrides settings")
	flags.BoolVar(&opts.record, "record", false, "record the run summary in Firestore, requires settings")
	return cmd
}

func (opts options) confirmer() setlabels.Confirmer {
	if opts.batch {
		return ask.Batch{setlabels.PhaseClear: opts.clear, setlabels.PhaseApply: opts.apply}
	}
	return ask.Prompt{}
}

func validateURI(uri string) error {
	_, err := gcs.ParseLocation(uri)
	return err
}

func (opts options) resolveURI() (string, error) {
	if opts.uri != "" {
		return opts.uri, validateURI(opts.uri)
	}
	if opts.batch {
		return "", fmt.Errorf("--uri is required with --batch")
	}
	return ask.Prompt{}.Input("Enter the CSV URI ("+gcs.ExpectedPattern+")", validateURI)
}

func loadSettings(opts options) (settings solution.Settings, err error) {
	if opts.settingsPath != "" {
		if err = ffo.ReadUnmarshalYAML(opts.settingsPath, &settings); err != nil {
			return settings, err
		}
	}
	settings.Situate(opts.environment)
	if err = validater.ValidateStruct(&settings, "settings"); err != nil {
		return settings, err
	}
	if opts.auditProject != "" {
		settings.Hosting.Stackdriver.ProjectID = opts.auditProject
	}
	return settings, nil
}

func run(ctx context.Context, opts options, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	settings, err := loadSettings(opts)
	if err != nil {
		return err
	}
	uri, err := opts.resolveURI()
	if err != nil {
		return err
	}
	location, err := gcs.ParseLocation(uri)
	if err != nil {
		return err
	}

	creds, err := google.FindDefaultCredentials(ctx, cloudPlatformScope)
	if err != nil {
		return fmt.Errorf("google.FindDefaultCredentials %v", err)
	}
	clientOption := option.WithCredentials(creds)

	var store gcs.Store = gcs.FileStore{}
	if !location.IsLocal() {
		storageClient, err := storage.NewClient(ctx, clientOption)
		if err != nil {
			return fmt.Errorf("storage.NewClient %v", err)
		}
		defer storageClient.Close()
		store = gcs.NewBucket(storageClient)
	}

	labeler, err := grm.NewProjectLabeler(ctx, clientOption)
	if err != nil {
		return err
	}
	defer labeler.Close()

	auditLogger, err := logging.NewAuditLogger(ctx, settings.Hosting.Stackdriver.ProjectID, clientOption)
	if err != nil {
		return err
	}
	defer auditLogger.Close()

	synchronizer := &setlabels.Synchronizer{
		Labeler:     labeler,
		Confirmer:   opts.confirmer(),
		Store:       store,
		Out:         out,
		Audit:       auditLogger,
		Environment: opts.environment,
	}
	if opts.record {
		if settings.Hosting.ProjectID == "" {
			return fmt.Errorf("--record requires a hosting projectID in settings")
		}
		recorder, err := gfs.NewRunRecorder(ctx, settings.Hosting.ProjectID, settings.Hosting.FireStore.CollectionIDs.LabelRuns, clientOption)
		if err != nil {
			return err
		}
		defer recorder.Close()
		synchronizer.Recorder = recorder
	}

	_, err = synchronizer.Run(ctx, uri)
	var validationError *lbl.ValidationError
	if errors.As(err, &validationError) {
		fmt.Fprintf(out, "Aborted, fix the label errors first: %s\n", lbl.RequirementsURL)
		return nil
	}
	return err
}
