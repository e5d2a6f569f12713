// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
)

// imageExtensions limits the picker listing. Content is still sniffed on
// selection.
var imageExtensions = []string{
	".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp", ".tif", ".tiff",
	".PNG", ".JPG", ".JPEG", ".GIF", ".BMP", ".WEBP", ".TIF", ".TIFF",
}

const pickerHeight = 12

func newImagePicker(dir string) filepicker.Model {
	fp := filepicker.New()
	fp.AllowedTypes = imageExtensions
	fp.ShowHidden = false
	fp.ShowSize = true
	fp.ShowPermissions = false
	fp.AutoHeight = false
	fp.Height = pickerHeight

	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
	}
	fp.CurrentDirectory = dir

	// esc closes the picker instead of going up a directory.
	fp.KeyMap.Back = key.NewBinding(key.WithKeys("h", "backspace", "left"), key.WithHelp("h", "back"))

	return fp
}
