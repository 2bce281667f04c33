package store

import (
	"fmt"

	"github.com/jinzhu/gorm"

	"github.com/tutolink/tutolink-api/schema"
)

var ErrCourseNotFound = fmt.Errorf("course not found")

func (s *TutoriaStore) GetCourse(id string) (*schema.Course, error) {
	var course schema.Course
	if err := s.ormDB.Where("id = ?", id).First(&course).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

func (s *TutoriaStore) ListCourses() ([]schema.Course, error) {
	courses := []schema.Course{}
	if err := s.ormDB.Order("id").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// GetCourseIndex loads the given courses into a lookup map keyed by
// course id. Unknown ids are skipped.
func (s *TutoriaStore) GetCourseIndex(ids []string) (map[string]schema.Course, error) {
	index := make(map[string]schema.Course, len(ids))
	if len(ids) == 0 {
		return index, nil
	}

	courses := []schema.Course{}
	if err := s.ormDB.Where("id IN (?)", ids).Find(&courses).Error; err != nil {
		return nil, err
	}
	for _, c := range courses {
		index[c.ID] = c
	}

	return index, nil
}
