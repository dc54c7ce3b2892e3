// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command train fits the questionnaire classifier offline and writes
// the model, scaler, and label-encoder artifacts as gob files.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/Vinthiya3014/MBTI-project/train"
)

func main() {
	dataPath := flag.String("data", "data/merged_dataset.csv", "path to the labeled training CSV")
	seed := flag.Int64("seed", 42, "random seed for oversampling and fold assignment")
	folds := flag.Int("folds", 5, "cross-validation fold count")
	k := flag.Int("k", 5, "neighbor count for the k-NN model")
	flag.Parse()

	// Load
	ds, err := train.LoadCSV(*dataPath)
	if err != nil {
		slog.Error("failed to load dataset", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded dataset", "path", *dataPath, "rows", humanize.Comma(int64(ds.Len())))

	// Encode labels
	var encoder train.LabelEncoder
	encoder.Fit(ds.Labels)
	y, err := encoder.Transform(ds.Labels)
	if err != nil {
		slog.Error("failed to encode labels", "error", err)
		os.Exit(1)
	}
	slog.Info("Encoded labels", "classes", len(encoder.Classes))

	// Scale features
	var scaler train.StandardScaler
	X := scaler.FitTransform(ds.Features)

	// Balance classes
	rng := rand.New(rand.NewSource(*seed))
	balX, balY := train.Oversample(X, y, rng)
	slog.Info("Oversampled classes",
		"before", humanize.Comma(int64(len(X))),
		"after", humanize.Comma(int64(len(balX))))

	// Cross-validate on the balanced set
	pred, err := train.CrossValidate(balX, balY, *folds, *k, rng)
	if err != nil {
		slog.Error("cross-validation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Cross-validation done",
		"folds", *folds,
		"accuracy", fmt.Sprintf("%.4f", train.Accuracy(balY, pred)))
	fmt.Print(train.ClassificationReport(balY, pred, encoder.Classes))

	// Fit the final model on everything
	model := train.NewKNNClassifier(*k)
	if err := model.Fit(balX, balY); err != nil {
		slog.Error("final fit failed", "error", err)
		os.Exit(1)
	}

	// Persist artifacts
	artifacts := []struct {
		path string
		v    any
	}{
		{"mbti_model.gob", model},
		{"scaler.gob", &scaler},
		{"label_encoder.gob", &encoder},
	}
	for _, a := range artifacts {
		if err := train.SaveGob(a.path, a.v); err != nil {
			slog.Error("failed to save artifact", "path", a.path, "error", err)
			os.Exit(1)
		}
		slog.Info("Saved artifact", "path", a.path)
	}
}
