// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// NotesAPIYAML is a small OAS 3.0 document describing a notes service. It
// declares exactly the five schemas the default re-export manifest names.
const NotesAPIYAML = `openapi: 3.0.3
info:
  title: Notes API
  version: 1.0.0
paths:
  /notes:
    get:
      operationId: listNotes
      summary: List notes
      parameters:
        - name: limit
          in: query
          schema:
            type: integer
      responses:
        "200":
          description: All notes
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: '#/components/schemas/Note'
    post:
      operationId: createNote
      requestBody:
        required: true
        content:
          application/json:
            schema:
              $ref: '#/components/schemas/CreateNoteRequest'
      responses:
        "201":
          description: Created
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Note'
        "400":
          $ref: '#/components/responses/BadRequest'
  /notes/{id}:
    parameters:
      - name: id
        in: path
        required: true
        schema:
          type: string
    put:
      operationId: updateNote
      requestBody:
        required: true
        content:
          application/json:
            schema:
              $ref: '#/components/schemas/UpdateNoteRequest'
      responses:
        "200":
          description: Updated
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Note'
    delete:
      operationId: deleteNote
      responses:
        "200":
          description: Deleted
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/SuccessDeleteResponse'
        "404":
          description: Not found
components:
  responses:
    BadRequest:
      description: Invalid input
      content:
        application/json:
          schema:
            $ref: '#/components/schemas/ErrorResponse'
  schemas:
    Note:
      type: object
      description: A single note
      required: [id, title, content, createdAt]
      properties:
        id:
          type: string
          readOnly: true
        title:
          type: string
        content:
          type: string
        tags:
          type: array
          items:
            type: string
        createdAt:
          type: string
          format: date-time
    CreateNoteRequest:
      type: object
      required: [title, content]
      properties:
        title:
          type: string
        content:
          type: string
    UpdateNoteRequest:
      type: object
      properties:
        title:
          type: string
        content:
          type: string
    ErrorResponse:
      type: object
      required: [message]
      properties:
        message:
          type: string
        code:
          type: integer
          nullable: true
    SuccessDeleteResponse:
      type: object
      required: [success]
      properties:
        success:
          type: boolean
          enum: [true]
`

// PetstoreOAS2YAML is a minimal Swagger 2.0 document with one definition.
const PetstoreOAS2YAML = `swagger: "2.0"
info:
  title: Petstore
  version: 1.0.0
paths:
  /pets:
    get:
      operationId: listPets
      parameters:
        - name: tag
          in: query
          type: string
      responses:
        200:
          description: Pets
          schema:
            type: array
            items:
              $ref: '#/definitions/Pet'
definitions:
  Pet:
    type: object
    required: [id]
    properties:
      id:
        type: integer
      name:
        type: string
`

// WriteFile writes content to name inside dir and returns the full path.
// The test fails immediately if the write fails.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("testutil: mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("testutil: write %s: %v", path, err)
	}
	return path
}

// WriteNotesSpec writes NotesAPIYAML to openapi/notes-api.yaml under dir.
func WriteNotesSpec(t testing.TB, dir string) string {
	t.Helper()
	return WriteFile(t, dir, filepath.Join("openapi", "notes-api.yaml"), NotesAPIYAML)
}
