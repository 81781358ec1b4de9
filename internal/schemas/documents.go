package schemas

// Schemas for the knowledge base document formats. Documents are validated
// at load time so a malformed file is reported with field paths instead of
// surfacing as a zero-valued struct later.

const projectSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["project"],
  "properties": {
    "project": {
      "type": "object",
      "required": ["title"],
      "properties": {
        "title": {"type": "string", "minLength": 1},
        "summary": {"type": "string"},
        "raw_summary": {"type": "string"}
      }
    }
  }
}`

const workExperienceSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["work_experience"],
  "properties": {
    "work_experience": {
      "type": "object",
      "required": ["positions"],
      "properties": {
        "positions": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["company", "position"],
            "properties": {
              "id": {"type": "integer"},
              "company": {"type": "string"},
              "position": {"type": "string"},
              "location": {"type": "string"},
              "duration": {
                "type": "object",
                "properties": {
                  "start": {"type": "string"},
                  "end": {"type": "string"}
                }
              },
              "type": {"type": "string"},
              "status": {"type": "string"},
              "description": {"type": "array", "items": {"type": "string"}},
              "technologies": {"type": "array", "items": {"type": "string"}},
              "achievements": {"type": "array", "items": {"type": "string"}}
            }
          }
        }
      }
    }
  }
}`

const skillsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["skills"],
  "properties": {
    "skills": {
      "type": "object",
      "required": ["categories"],
      "properties": {
        "categories": {
          "type": "object",
          "additionalProperties": {
            "type": "object",
            "properties": {
              "skills": {
                "type": "array",
                "items": {
                  "type": "object",
                  "required": ["name"],
                  "properties": {
                    "name": {"type": "string", "minLength": 1},
                    "proficiency": {"type": "string"},
                    "years_experience": {"type": "string"},
                    "context": {"type": "array", "items": {"type": "string"}}
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}`

const profileSummarySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["profile_summary"],
  "properties": {
    "profile_summary": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "title": {"type": "string"},
        "location": {"type": "string"},
        "summary": {"type": "string"}
      }
    }
  }
}`
