package ai

const CVSchema = `{
  "type": "object",
  "properties": {
    "skills": {"type": "array", "items": {"type": "string"}},
    "targetRoles": {"type": "array", "items": {"type": "string"}},
    "education": {"type": "array", "items": {"type": "object"}},
    "projects": {"type": "array", "items": {"type": "object"}},
    "languages": {"type": "array", "items": {"type": "object"}},
    "bio": {"type": "string"},
    "headline": {"type": "string"}
  }
}`

const CompareSchema = `{
  "type": "object",
  "required": ["matchScore"],
  "properties": {
    "matchScore": {"type": "number"},
    "skillMatch": {"type": "array", "items": {"type": "string"}},
    "missingSkills": {"type": "array", "items": {"type": "string"}},
    "strengths": {"type": "array", "items": {"type": "string"}},
    "weaknesses": {"type": "array", "items": {"type": "string"}}
  }
}`

const RoadmapSchema = `{
  "type": "object",
  "required": ["phases"],
  "properties": {
    "totalDurationWeeks": {"type": "integer"},
    "phases": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["phaseNumber"],
        "properties": {
          "phaseNumber": {"type": "integer"},
          "startWeek": {"type": "integer"},
          "endWeek": {"type": "integer"}
        }
      }
    }
  }
}`
