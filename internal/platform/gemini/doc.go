// Package gemini implements the generation.Generator interface using
// Google's Gemini API, including structured output, image and speech
// modalities, and the tool-invocation loop for flows that expose callable
// tools to the model.
package gemini
