// Package generation defines the boundary between the flow layer and the
// remote generative model. It abstracts the details of the model API
// (Gemini), allowing flows to request text, structured, image, and audio
// generation without coupling to a specific provider.
package generation
