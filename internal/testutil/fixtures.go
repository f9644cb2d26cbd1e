// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/oasir/parser"
)

// ModelServiceYAML is a small but complete document used across package
// tests. Assembling it yields five operations; deleteModel (DELETE) and
// createFile (multipart body) are skipped.
const ModelServiceYAML = `openapi: "3.0.3"
info:
  title: Model Service
  version: "1.0.0"
paths:
  /models:
    get:
      operationId: listModels
      summary: Lists the available models.
      tags: [Models]
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/ListModelsResponse"
  /models/{model}:
    parameters:
      - name: model
        in: path
        required: true
        schema:
          type: string
          example: gpt-4o
    get:
      operationId: retrieveModel
      summary: Retrieves a model instance.
      tags: [Models]
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Model"
    delete:
      operationId: deleteModel
      summary: Delete a fine-tuned model.
      tags: [Models]
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/DeleteModelResponse"
  /chat/completions:
    post:
      operationId: createChatCompletion
      summary: Creates a model response for the given chat conversation.
      tags: [Chat]
      requestBody:
        required: true
        content:
          application/json:
            schema:
              $ref: "#/components/schemas/CreateChatCompletionRequest"
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/CreateChatCompletionResponse"
  /files:
    get:
      operationId: listFiles
      summary: Returns a list of files.
      tags: [Files]
      parameters:
        - name: purpose
          in: query
          schema:
            type: string
            example: fine-tune
        - name: limit
          in: query
          schema:
            type: integer
            example: 20
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/ListFilesResponse"
    post:
      operationId: createFile
      summary: Upload a file.
      tags: [Files]
      requestBody:
        required: true
        content:
          multipart/form-data:
            schema:
              type: object
              properties:
                file:
                  type: string
                  format: binary
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/OpenAIFile"
  /files/{file_id}/content:
    get:
      operationId: downloadFile
      summary: Returns the contents of the specified file.
      tags: [Files]
      parameters:
        - name: file_id
          in: path
          required: true
          schema:
            type: string
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                type: string
components:
  schemas:
    Model:
      type: object
      description: Describes a model offering.
      properties:
        id:
          type: string
          description: The model identifier.
        created:
          type: integer
          description: Unix timestamp of creation.
        object:
          type: string
          example: model
        owned_by:
          type: string
      required: [id, object, created, owned_by]
    ListModelsResponse:
      type: object
      properties:
        object:
          type: string
          example: list
        data:
          type: array
          items:
            $ref: "#/components/schemas/Model"
      required: [object, data]
    DeleteModelResponse:
      type: object
      properties:
        id:
          type: string
        deleted:
          type: boolean
      required: [id, deleted]
    ChatMessage:
      type: object
      properties:
        role:
          type: string
        content:
          type: string
        name:
          type: string
      required: [role, content]
    CreateChatCompletionRequest:
      type: object
      properties:
        model:
          type: string
          example: gpt-4o
        messages:
          type: array
          items:
            $ref: "#/components/schemas/ChatMessage"
        temperature:
          type: number
          example: 1
        stop:
          oneOf:
            - type: string
              default: "<|endoftext|>"
            - type: array
              items:
                type: string
        metadata:
          type: object
          properties:
            user:
              type: string
      required: [model, messages]
    CreateChatCompletionResponse:
      type: object
      properties:
        id:
          type: string
        choices:
          type: array
          items:
            type: object
            properties:
              index:
                type: integer
              message:
                $ref: "#/components/schemas/ChatMessage"
              finish_reason:
                type: string
        usage:
          type: object
        logprobs:
          type: array
          items:
            type: array
            items:
              type: number
      required: [id, choices]
    ListFilesResponse:
      type: object
      properties:
        data:
          type: array
          items:
            $ref: "#/components/schemas/OpenAIFile"
        object:
          type: string
      required: [data, object]
    OpenAIFile:
      type: object
      properties:
        id:
          type: string
        bytes:
          type: integer
        filename:
          type: string
        purpose:
          $ref: "#/components/schemas/FilePurpose"
      required: [id, bytes, filename, purpose]
    FilePurpose:
      type: string
      enum: [fine-tune, assistants]
`

// MustParseMap decodes a YAML or JSON fixture into an ordered tree.
func MustParseMap(t testing.TB, src string) *parser.Map {
	t.Helper()
	m, err := parser.UnmarshalMap([]byte(src))
	if err != nil {
		t.Fatalf("Failed to parse fixture: %v", err)
	}
	return m
}

// WriteTempFile writes content to name inside a temporary directory.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempFile(t testing.TB, name, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}

	return tmpFile
}
