package pipeline

import (
	"path/filepath"
	"strings"

	"ad-compliance-be/internal/pkg/serverutils"
)

type Modality string

const (
	ModalityVideo   Modality = "video"
	ModalityImage   Modality = "image"
	ModalityWebsite Modality = "website"
)

var videoExtensions = map[string]bool{
	".mp4": true, ".mov": true, ".avi": true, ".wmv": true, ".flv": true, ".mkv": true,
}

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".bmp": true, ".tiff": true,
}

type ClassifyInput struct {
	FilePath   string
	URL        string
	Guidelines string
}

type Classification struct {
	Modality    Modality
	Target      string // file path or URL
	Instruction string
	// GuidelineOverride is the request-supplied guideline text, empty when the
	// fixed modality checklist applies.
	GuidelineOverride string
}

// Classify decides which analysis pipeline applies to the input and builds
// the initial instruction string. Pure; performs no I/O.
func Classify(in ClassifyInput) (*Classification, error) {
	hasFile := in.FilePath != ""
	hasURL := in.URL != ""

	if hasFile && hasURL {
		return nil, serverutils.NewValidationError("cannot provide multiple inputs, choose one: URL or file path")
	}
	if !hasFile && !hasURL {
		return nil, serverutils.NewValidationError("must provide one input: URL or file path")
	}

	var c Classification
	if hasFile {
		ext := strings.ToLower(filepath.Ext(in.FilePath))
		switch {
		case videoExtensions[ext]:
			c = Classification{
				Modality:    ModalityVideo,
				Target:      in.FilePath,
				Instruction: "Analyze this video ad in file path: " + in.FilePath,
			}
		case imageExtensions[ext]:
			c = Classification{
				Modality:    ModalityImage,
				Target:      in.FilePath,
				Instruction: "Analyze this Instagram post in file path: " + in.FilePath,
			}
		default:
			return nil, serverutils.NewValidationError("unsupported file type: %s", ext)
		}
	} else {
		c = Classification{
			Modality:    ModalityWebsite,
			Target:      in.URL,
			Instruction: "Analyze this website at URL: " + in.URL,
		}
	}

	if in.Guidelines != "" {
		c.Instruction += " with guidelines: " + in.Guidelines
		c.GuidelineOverride = in.Guidelines
	}

	return &c, nil
}
