package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	whitebg "github.com/lumoray/white-background-remover-go"
)

// go run main.go -in logo.png -out logo-transparent.png
// go run main.go -in photo.jpg -threshold 230
// go run main.go -in logo.png -outbase64
// go run main.go -in scan.png -out scan-transparent.webp -preview

const (
	defaultInput  = "public/assets/logo-flags.png"
	defaultOutput = "public/assets/logo-flags-transparent.png"
)

func main() {
	input := flag.String("in", "", "Path to the source image (png/jpg/gif/webp/bmp/tiff)")
	inputBase64 := flag.String("inbase64", "", "Base64 image input (optionally a data URL)")
	output := flag.String("out", "", "Output path (defaults to <name>-transparent.png)")
	outputBase64 := flag.Bool("outbase64", false, "Write result as base64 PNG to stdout instead of a file")
	threshold := flag.Int("threshold", whitebg.DefaultThreshold, "Channel cutoff in [0,255]; r, g and b must all exceed it")
	preview := flag.Bool("preview", false, "Also write a checkerboard preview next to the output")
	flag.Parse()

	var (
		img    image.Image
		format string
		source string
		err    error
	)

	inPath := *input
	if *inputBase64 != "" {
		img, format, err = whitebg.DecodeBase64Image(*inputBase64)
		source = "base64"
	} else {
		if inPath == "" {
			inPath = defaultInput
			if *output == "" {
				*output = defaultOutput
			}
		}

		inFile, openErr := os.Open(inPath)
		if openErr != nil {
			fmt.Fprintf(os.Stderr, "open input: %v\n", openErr)
			os.Exit(1)
		}
		defer inFile.Close()

		img, format, err = whitebg.Decode(inFile)
		source = inPath
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "decode input: %v\n", err)
		os.Exit(1)
	}

	info, err := whitebg.Inspect(img, *threshold)
	if err != nil {
		fmt.Fprintf(os.Stderr, "inspect image: %v\n", err)
		os.Exit(1)
	}

	cleaned, err := whitebg.Remove(img, *threshold)
	if err != nil {
		fmt.Fprintf(os.Stderr, "remove background: %v\n", err)
		os.Exit(1)
	}

	total := info.Bounds.Dx() * info.Bounds.Dy()

	if *outputBase64 {
		encoded, encErr := whitebg.EncodePNGToBase64(cleaned)
		if encErr != nil {
			fmt.Fprintf(os.Stderr, "encode base64 output: %v\n", encErr)
			os.Exit(1)
		}
		fmt.Println(encoded)
		fmt.Printf("Processed %s (%s) -> base64 [%d/%d background pixels, threshold %d]\n",
			source, format, info.Background, total, *threshold)
		return
	}

	outPath := *output
	if outPath == "" {
		base := "output"
		if inPath != "" {
			base = strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))
		}
		outPath = filepath.Join(filepath.Dir(inPath), base+"-transparent.png")
	}

	if err := whitebg.SaveImage(outPath, cleaned); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved transparent image to %s [%d/%d background pixels, threshold %d]\n",
		outPath, info.Background, total, *threshold)

	if *preview {
		ext := filepath.Ext(outPath)
		previewPath := strings.TrimSuffix(outPath, ext) + "-preview.png"
		if err := whitebg.SaveImage(previewPath, whitebg.Preview(cleaned)); err != nil {
			fmt.Fprintf(os.Stderr, "write preview: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved preview to %s\n", previewPath)
	}
}
