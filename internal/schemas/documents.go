package schemas

// ParsedResumeSchema validates the structured document returned by LLM resume
// extraction before it is decoded.
const ParsedResumeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "ParsedResume",
  "type": "object",
  "required": ["name", "skills"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "contact": {
      "type": "object",
      "properties": {
        "email": {"type": "string"},
        "phone": {"type": "string"}
      }
    },
    "skills": {
      "type": "array",
      "items": {"type": "string"}
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["degree"],
        "properties": {
          "degree": {"type": "string"},
          "institution": {"type": "string"},
          "year": {"type": ["string", "integer"]}
        }
      }
    },
    "work_experience": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["company"],
        "properties": {
          "company": {"type": "string"},
          "role": {"type": "string"},
          "duration": {"type": "string"}
        }
      }
    },
    "certifications": {
      "type": "array",
      "items": {"type": "string"}
    }
  }
}`

// CandidatesSchema validates a caller-supplied candidates JSON document (an
// array of candidate records) before matching.
const CandidatesSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Candidates",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "name"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "name": {"type": "string", "minLength": 1},
      "skills": {"type": "array", "items": {"type": "string"}},
      "location": {"type": "string"},
      "rural": {"type": "boolean"},
      "social": {"type": "string"},
      "experience": {"type": "string"},
      "past_participation": {"type": "boolean"},
      "has_experience": {"type": "boolean"},
      "education": {"type": "string"},
      "certifications": {"type": "array", "items": {"type": "string"}},
      "projects": {"type": "array", "items": {"type": "string"}},
      "objective": {"type": "string"}
    }
  }
}`
