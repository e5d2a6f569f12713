// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// client screens and the headless submit command.
//
// All Msg* constants are human-readable notices shown to the user to
// describe the outcome of an operation. Keeping them in one place ensures
// consistent wording between the TUI and the CLI.
package app

const (
	// MsgBatchFull is shown when a selection would push the batch past its
	// size limit.
	MsgBatchFull = "⚠️ You’ve reached the maximum batch size."

	// MsgSelectUpTo is shown next to MsgBatchFull and on an empty submit.
	MsgSelectUpTo = "Please select up to 2 images."

	// MsgUploadSucceeded is shown after a successful round-trip.
	MsgUploadSucceeded = "Images uploaded successfully!"

	// MsgUploadFailed is shown when encoding or the network exchange fails.
	MsgUploadFailed = "Failed to upload images."

	// MsgNoImagesSelected is shown when submit is requested on an empty batch.
	MsgNoImagesSelected = "No images selected."

	// MsgNotAnImage is shown when a selected file is not an image.
	MsgNotAnImage = "Only image files can be added."

	// MsgSubmitInProgress is shown when the batch is edited during a submit.
	MsgSubmitInProgress = "Upload in progress, please wait."

	// MsgCopied is shown after the response was copied to the clipboard.
	MsgCopied = "Response copied to clipboard."

	// MsgSignedOut is shown after the session was cleared.
	MsgSignedOut = "Signed out."

	// MsgSignInRequired is shown on the identity gate screen.
	MsgSignInRequired = "Sign in to continue."

	// MsgSessionLoading is shown while the identity session is resolving.
	MsgSessionLoading = "Loading..."
)
