// Package ui holds the ebiten parameter panel and the Wolff cluster overlay.
// Everything here is built only with the ebiten tag.
package ui
