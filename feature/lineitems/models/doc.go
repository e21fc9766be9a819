// Package models defines the line-item row shared by invoice and cost
// collections, the typed submission record and the read projections.
package models
