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

package imagecodec

import (
	"image"
	"image/color"
	"math"

	"github.com/hiddenbyte/stegano/internal/jpegcoeff"
)

// Quantization tables in natural (row-major) order, per ISO/IEC 10918-1
// Annex K.1 at quality 50. EncodeFromCoefficients reconstructs an image by
// running these in reverse (dequantize, then inverse DCT), so extraction
// and re-embedding only need to agree with themselves, not with whatever
// quantization the original file on disk used.
var (
	lumaQuant = [64]int32{
		16, 11, 10, 16, 24, 40, 51, 61,
		12, 12, 14, 19, 26, 58, 60, 55,
		14, 13, 16, 24, 40, 57, 69, 56,
		14, 17, 22, 29, 51, 87, 80, 62,
		18, 22, 37, 56, 68, 109, 103, 77,
		24, 35, 55, 64, 81, 104, 113, 92,
		49, 64, 78, 87, 103, 121, 120, 101,
		72, 92, 95, 98, 112, 100, 103, 99,
	}
	chromaQuant = [64]int32{
		17, 18, 24, 47, 99, 99, 99, 99,
		18, 21, 26, 66, 99, 99, 99, 99,
		24, 26, 56, 99, 99, 99, 99, 99,
		47, 66, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
	}
)

// scaleQuant scales the unscaled table for quality in [1,100], the same
// formula libjpeg and the standard library's jpeg encoder use.
func scaleQuant(table [64]int32, quality int) [64]int32 {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	scale := int32(5000 / quality)
	if quality >= 50 {
		scale = int32(200 - quality*2)
	}
	var out [64]int32
	for i, v := range table {
		q := (v*scale + 50) / 100
		if q < 1 {
			q = 1
		}
		if q > 255 {
			q = 255
		}
		out[i] = q
	}
	return out
}

// forwardDCT8x8 computes the 2-D DCT-II of an 8x8 block of samples already
// shifted to be centered on zero (i.e. pixel-128).
func forwardDCT8x8(samples [64]float64) [64]float64 {
	var out [64]float64
	for v := 0; v < 8; v++ {
		for u := 0; u < 8; u++ {
			var sum float64
			for y := 0; y < 8; y++ {
				for x := 0; x < 8; x++ {
					sum += samples[y*8+x] *
						math.Cos(float64(2*x+1)*float64(u)*math.Pi/16) *
						math.Cos(float64(2*y+1)*float64(v)*math.Pi/16)
				}
			}
			cu, cv := 1.0, 1.0
			if u == 0 {
				cu = 1 / math.Sqrt2
			}
			if v == 0 {
				cv = 1 / math.Sqrt2
			}
			out[v*8+u] = 0.25 * cu * cv * sum
		}
	}
	return out
}

// inverseDCT8x8 is forwardDCT8x8's inverse.
func inverseDCT8x8(coeffs [64]float64) [64]float64 {
	var out [64]float64
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			var sum float64
			for v := 0; v < 8; v++ {
				for u := 0; u < 8; u++ {
					cu, cv := 1.0, 1.0
					if u == 0 {
						cu = 1 / math.Sqrt2
					}
					if v == 0 {
						cv = 1 / math.Sqrt2
					}
					sum += cu * cv * coeffs[v*8+u] *
						math.Cos(float64(2*x+1)*float64(u)*math.Pi/16) *
						math.Cos(float64(2*y+1)*float64(v)*math.Pi/16)
				}
			}
			out[y*8+x] = 0.25 * sum
		}
	}
	return out
}

// ExtractCoefficients runs a forward DCT and quantization over img's Y (and
// optionally Cb/Cr) planes, in 8x8 blocks, producing the coefficient tree
// jpegstego embeds bits into. Component ID 1 is luma, 2 is Cb, 3 is Cr,
// matching the JPEG convention jpegstego.Capacity/Embed's useChroma flag
// assumes. Each component's Blocks is a single row holding every block of
// the plane in raster order (mxx columns per row), rather than one row per
// block row; reconstructPlane recovers (bx, by) from the flat index.
func ExtractCoefficients(img image.Image, quality int, useChroma bool) *jpegcoeff.Coefficients {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	mxx, myy := (width+7)/8, (height+7)/8

	lq := scaleQuant(lumaQuant, quality)
	cq := scaleQuant(chromaQuant, quality)

	yBlocks := extractPlane(img, b, mxx, myy, lq, func(c color.Color) float64 {
		yy, _, _ := rgbToYCbCr(c)
		return yy
	})
	out := &jpegcoeff.Coefficients{
		Components: []jpegcoeff.Component{{ID: 1, Blocks: [][]jpegcoeff.Block{yBlocks}}},
	}
	if useChroma {
		cbBlocks := extractPlane(img, b, mxx, myy, cq, func(c color.Color) float64 {
			_, cb, _ := rgbToYCbCr(c)
			return cb
		})
		crBlocks := extractPlane(img, b, mxx, myy, cq, func(c color.Color) float64 {
			_, _, cr := rgbToYCbCr(c)
			return cr
		})
		out.Components = append(out.Components,
			jpegcoeff.Component{ID: 2, Blocks: [][]jpegcoeff.Block{cbBlocks}},
			jpegcoeff.Component{ID: 3, Blocks: [][]jpegcoeff.Block{crBlocks}},
		)
	}
	return out
}

func extractPlane(img image.Image, b image.Rectangle, mxx, myy int, quant [64]int32, plane func(color.Color) float64) []jpegcoeff.Block {
	blocks := make([]jpegcoeff.Block, 0, mxx*myy)
	for by := 0; by < myy; by++ {
		for bx := 0; bx < mxx; bx++ {
			var samples [64]float64
			for y := 0; y < 8; y++ {
				for x := 0; x < 8; x++ {
					px := b.Min.X + bx*8 + x
					py := b.Min.Y + by*8 + y
					if px > b.Max.X-1 {
						px = b.Max.X - 1
					}
					if py > b.Max.Y-1 {
						py = b.Max.Y - 1
					}
					samples[y*8+x] = plane(img.At(px, py)) - 128
				}
			}
			freq := forwardDCT8x8(samples)
			var block jpegcoeff.Block
			for i := 0; i < 64; i++ {
				block[i] = int32(math.Round(freq[i] / float64(quant[i])))
			}
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// EncodeFromCoefficients dequantizes and inverse-DCTs coeffs back into an
// RGBA image of the given pixel dimensions.
func EncodeFromCoefficients(coeffs *jpegcoeff.Coefficients, width, height int, quality int) *image.RGBA {
	mxx := (width + 7) / 8

	lq := scaleQuant(lumaQuant, quality)
	cq := scaleQuant(chromaQuant, quality)

	planes := make(map[int][]float64)
	for _, comp := range coeffs.Components {
		quant := lq
		if comp.ID != 1 {
			quant = cq
		}
		plane := reconstructPlane(comp, mxx, quant, width, height)
		planes[comp.ID] = plane
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	yPlane := planes[1]
	cbPlane := planes[2]
	crPlane := planes[3]
	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			idx := py*width + px
			yy := yPlane[idx]
			cb, cr := 128.0, 128.0 // neutral chroma when a plane is absent
			if cbPlane != nil {
				cb = cbPlane[idx]
			}
			if crPlane != nil {
				cr = crPlane[idx]
			}
			r, g, bch := ycbcrToRGB(yy, cb, cr)
			out.Set(px, py, color.RGBA{R: r, G: g, B: bch, A: 255})
		}
	}
	return out
}

func reconstructPlane(comp jpegcoeff.Component, mxx int, quant [64]int32, width, height int) []float64 {
	plane := make([]float64, width*height)
	for i, block := range comp.Blocks[0] {
		bx := i % mxx
		by := i / mxx
		var freq [64]float64
		for k := 0; k < 64; k++ {
			freq[k] = float64(block[k]) * float64(quant[k])
		}
		samples := inverseDCT8x8(freq)
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				px := bx*8 + x
				py := by*8 + y
				if px >= width || py >= height {
					continue
				}
				plane[py*width+px] = samples[y*8+x] + 128
			}
		}
	}
	return plane
}

func rgbToYCbCr(c color.Color) (y, cb, cr float64) {
	r, g, b, _ := c.RGBA()
	rf, gf, bf := float64(r>>8), float64(g>>8), float64(b>>8)
	y = 0.299*rf + 0.587*gf + 0.114*bf
	cb = -0.168736*rf - 0.331264*gf + 0.5*bf + 128
	cr = 0.5*rf - 0.418688*gf - 0.081312*bf + 128
	return
}

func ycbcrToRGB(y, cb, cr float64) (r, g, b uint8) {
	cb -= 128
	cr -= 128
	rf := y + 1.402*cr
	gf := y - 0.344136*cb - 0.714136*cr
	bf := y + 1.772*cb
	return clampByte(rf), clampByte(gf), clampByte(bf)
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
