// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

/*
Package slice compliments the standard [slices] package by providing functional
programming utilities (Map, Filter, Chunk) leveraging generics.
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Filter filters a slice, returning only elements where the predicate function evaluates to true.
func Filter[T any](input []T, predicate func(T) bool) []T {
	if input == nil {
		return nil
	}

	// Not pre-allocating to full length to avoid excessive memory on heavy filters
	var result []T
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}

	return result
}

// Chunk splits a slice into consecutive sub-slices of at most size elements.
// The last chunk may be shorter. A non-positive size yields a single chunk
// containing the whole input.
func Chunk[T any](input []T, size int) [][]T {
	if len(input) == 0 {
		return nil
	}

	if size <= 0 {
		return [][]T{input}
	}

	chunks := make([][]T, 0, (len(input)+size-1)/size)
	for start := 0; start < len(input); start += size {
		end := start + size
		if end > len(input) {
			end = len(input)
		}
		chunks = append(chunks, input[start:end])
	}

	return chunks
}

// Truncate bounds a slice to at most max elements.
// It returns the input unchanged when it is already within the bound.
func Truncate[T any](input []T, max int) []T {
	if max >= 0 && len(input) > max {
		return input[:max]
	}
	return input
}
