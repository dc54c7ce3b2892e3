// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package train implements the offline model-training pipeline for the
// questionnaire classifier.
//
// The pipeline mirrors a standard tabular-ML workflow: load a labelled
// CSV dataset ([LoadCSV]), encode string labels to class IDs
// ([LabelEncoder]), standardize features ([StandardScaler]), balance
// classes by random oversampling ([Oversample]), fit a k-nearest
// neighbors model ([KNNClassifier]), and evaluate it with stratified
// cross-validation ([CrossValidate]).
//
// Fitted artifacts persist as gob files via [SaveGob] and reload with
// [LoadGob]. The web server does not consume these artifacts; scoring
// there is rule-based. The cmd/train binary drives this package.
package train
