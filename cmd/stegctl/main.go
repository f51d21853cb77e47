/*
 * Copyright (c) 2026, stegano contributors
 * All rights reserved.
 *
 * Redistribution and use in source and binary forms, with or without
 * modification, are permitted provided that the following conditions are met:
 *
 *  * Redistributions of source code must retain the above copyright notice,
 *    this list of conditions and the following disclaimer.
 *
 *  * Redistributions in binary form must reproduce the above copyright notice,
 *    this list of conditions and the following disclaimer in the documentation
 *    and/or other materials provided with the distribution.
 *
 * THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
 * AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
 * IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
 * ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
 * LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
 * CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
 * SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
 * INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
 * CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
 * ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
 * POSSIBILITY OF SUCH DAMAGE.
 */

// stegctl is a small command-line front end for package stegano: hide a
// file or a text message in a cover image or cover text, and get it back
// out again.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hiddenbyte/stegano"
	"github.com/hiddenbyte/stegano/capacity"
	"github.com/hiddenbyte/stegano/frame"
	"github.com/hiddenbyte/stegano/internal/imagecodec"
)

func usage() {
	fmt.Fprintf(os.Stderr, `stegctl: hide and recover payloads in images and text

Usage:
  stegctl embed-image  -cover FILE -out FILE -message TEXT [-password PASS] [-bitdepth N]
  stegctl extract-image -cover FILE [-password PASS] [-bitdepth N]
  stegctl embed-text   -cover FILE -message TEXT [-password PASS] [-distributed]
  stegctl extract-text -cover FILE [-password PASS]

`)
	flag.PrintDefaults()
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	cover := fs.String("cover", "", "path to the cover file")
	out := fs.String("out", "", "path to write the output carrier (embed only)")
	message := fs.String("message", "", "text message to hide (embed only)")
	password := fs.String("password", "", "optional password")
	bitDepth := fs.Int("bitdepth", 1, "pixel-LSB bit depth (1-4)")
	distributed := fs.Bool("distributed", false, "scatter ZWC payload through the cover text (embed-text only)")
	if err := fs.Parse(os.Args[2:]); err != nil {
		os.Exit(2)
	}

	var err error
	switch cmd {
	case "embed-image":
		err = embedImage(*cover, *out, *message, *password, *bitDepth)
	case "extract-image":
		err = extractImage(*cover, *password, *bitDepth)
	case "embed-text":
		err = embedText(*cover, *out, *message, *password, *distributed)
	case "extract-text":
		err = extractText(*cover, *password)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "stegctl: %v\n", err)
		os.Exit(1)
	}
}

func embedImage(coverPath, outPath, message, password string, bitDepth int) error {
	if coverPath == "" || outPath == "" || message == "" {
		return fmt.Errorf("embed-image requires -cover, -out, and -message")
	}
	f, err := os.Open(coverPath)
	if err != nil {
		return err
	}
	defer f.Close()

	img, err := imagecodec.Decode(f)
	if err != nil {
		return err
	}

	result, err := stegano.EncodeImage(img, frame.TypeText, []byte(message), stegano.Options{
		Password: password,
		BitDepth: bitDepth,
	})
	if err != nil {
		return err
	}

	w, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer w.Close()
	return imagecodec.EncodePNG(w, result)
}

func extractImage(coverPath, password string, bitDepth int) error {
	if coverPath == "" {
		return fmt.Errorf("extract-image requires -cover")
	}
	f, err := os.Open(coverPath)
	if err != nil {
		return err
	}
	defer f.Close()

	img, err := imagecodec.Decode(f)
	if err != nil {
		return err
	}

	_, payload, err := stegano.DecodeImage(img, stegano.Options{Password: password, BitDepth: bitDepth})
	if err != nil {
		return err
	}
	fmt.Println(string(payload))
	return nil
}

func embedText(coverPath, outPath, message, password string, distributed bool) error {
	if coverPath == "" || message == "" {
		return fmt.Errorf("embed-text requires -cover and -message")
	}
	coverBytes, err := os.ReadFile(coverPath)
	if err != nil {
		return err
	}
	cover := string(coverBytes)

	if err := capacity.ValidateLength(len(message), capacity.MaxSecretLength, "message"); err != nil {
		return err
	}

	carrier, err := stegano.EncodeText(cover, frame.TypeText, []byte(message), stegano.Options{
		Password:    password,
		Distributed: distributed,
	})
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		file, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}
	_, err = io.WriteString(w, carrier)
	return err
}

func extractText(coverPath, password string) error {
	if coverPath == "" {
		return fmt.Errorf("extract-text requires -cover")
	}
	coverBytes, err := os.ReadFile(coverPath)
	if err != nil {
		return err
	}

	_, payload, err := stegano.DecodeText(string(coverBytes), stegano.Options{Password: password})
	if err != nil {
		return err
	}
	fmt.Println(string(payload))
	return nil
}
