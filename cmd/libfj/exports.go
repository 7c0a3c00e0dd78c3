package main

/*
#include "fj_types.h"
*/
import "C"

import (
	"unsafe"

	"libfj/internal/core/foreign"
	"libfj/internal/core/version"
)

func listView(out *C.FactoryRobotListInfo, items C.uint32_t) []foreign.ListRecord {
	return foreign.View((*foreign.ListRecord)(unsafe.Pointer(out)), uint32(items))
}

func cubeView(out *C.CubeData, items C.uint32_t) []foreign.Cube {
	return foreign.View((*foreign.Cube)(unsafe.Pointer(out)), uint32(items))
}

func detail(p *C.FactoryRobotGetInfo) *foreign.DetailRecord {
	return (*foreign.DetailRecord)(unsafe.Pointer(p))
}

func cstr(p *C.char) *byte { return (*byte)(unsafe.Pointer(p)) }

// status writes n through count when count is set and maps err
func status(count *C.uint32_t, n uint32, err error) C.int32_t {
	if count != nil {
		*count = C.uint32_t(n)
	}
	return C.int32_t(foreign.StatusOf(err))
}

// panicked zeroes count and reports LIBFJ_ERR_UNKNOWN
func panicked(count *C.uint32_t) C.int32_t {
	if count != nil {
		*count = 0
	}
	return C.int32_t(foreign.StatusUnknown)
}

//export libfj_factory_front_page
func libfj_factory_front_page(items C.uint32_t, out *C.FactoryRobotListInfo) (n C.uint32_t) {
	defer func() {
		if v := recover(); v != nil {
			caught("front_page", v)
			n = 0
		}
	}()
	got, _ := bridge().FrontPage(listView(out, items))
	return C.uint32_t(got)
}

//export libfj_factory_search
func libfj_factory_search(items C.uint32_t, out *C.FactoryRobotListInfo, q *C.FactorySearchQuery) (n C.uint32_t) {
	defer func() {
		if v := recover(); v != nil {
			caught("search", v)
			n = 0
		}
	}()
	got, _ := bridge().Search(listView(out, items), (*foreign.QuerySpec)(unsafe.Pointer(q)))
	return C.uint32_t(got)
}

//export libfj_factory_robot
func libfj_factory_robot(itemID C.uint32_t, out *C.FactoryRobotGetInfo) {
	defer func() {
		if v := recover(); v != nil {
			caught("robot", v)
		}
	}()
	_ = bridge().Robot(uint32(itemID), detail(out))
}

//export libfj_factory_robot_cubes
func libfj_factory_robot_cubes(items C.uint32_t, out *C.CubeData, info *C.FactoryRobotGetInfo) (n C.uint32_t) {
	defer func() {
		if v := recover(); v != nil {
			caught("robot_cubes", v)
			n = 0
		}
	}()
	got, _ := bridge().RobotCubes(cubeView(out, items), detail(info))
	return C.uint32_t(got)
}

//export libfj_factory_robot_cubes_raw
func libfj_factory_robot_cubes_raw(items C.uint32_t, out *C.CubeData, cube, colour *C.char) (n C.uint32_t) {
	defer func() {
		if v := recover(); v != nil {
			caught("robot_cubes_raw", v)
			n = 0
		}
	}()
	got, _ := bridge().RobotCubesRaw(cubeView(out, items), cstr(cube), cstr(colour))
	return C.uint32_t(got)
}

//export libfj_factory_front_page_ex
func libfj_factory_front_page_ex(items C.uint32_t, out *C.FactoryRobotListInfo, count *C.uint32_t) (st C.int32_t) {
	defer func() {
		if v := recover(); v != nil {
			caught("front_page_ex", v)
			st = panicked(count)
		}
	}()
	if out == nil && items > 0 {
		return status(count, 0, foreign.ErrNilOutput)
	}
	got, err := bridge().FrontPage(listView(out, items))
	return status(count, got, err)
}

//export libfj_factory_search_ex
func libfj_factory_search_ex(items C.uint32_t, out *C.FactoryRobotListInfo, q *C.FactorySearchQuery, count *C.uint32_t) (st C.int32_t) {
	defer func() {
		if v := recover(); v != nil {
			caught("search_ex", v)
			st = panicked(count)
		}
	}()
	if out == nil && items > 0 {
		return status(count, 0, foreign.ErrNilOutput)
	}
	got, err := bridge().Search(listView(out, items), (*foreign.QuerySpec)(unsafe.Pointer(q)))
	return status(count, got, err)
}

//export libfj_factory_robot_ex
func libfj_factory_robot_ex(itemID C.uint32_t, out *C.FactoryRobotGetInfo) (st C.int32_t) {
	defer func() {
		if v := recover(); v != nil {
			caught("robot_ex", v)
			st = C.int32_t(foreign.StatusUnknown)
		}
	}()
	return status(nil, 0, bridge().Robot(uint32(itemID), detail(out)))
}

//export libfj_factory_robot_cubes_ex
func libfj_factory_robot_cubes_ex(items C.uint32_t, out *C.CubeData, info *C.FactoryRobotGetInfo, count *C.uint32_t) (st C.int32_t) {
	defer func() {
		if v := recover(); v != nil {
			caught("robot_cubes_ex", v)
			st = panicked(count)
		}
	}()
	if out == nil && items > 0 {
		return status(count, 0, foreign.ErrNilOutput)
	}
	got, err := bridge().RobotCubes(cubeView(out, items), detail(info))
	return status(count, got, err)
}

//export libfj_factory_robot_cubes_raw_ex
func libfj_factory_robot_cubes_raw_ex(items C.uint32_t, out *C.CubeData, cube, colour *C.char, count *C.uint32_t) (st C.int32_t) {
	defer func() {
		if v := recover(); v != nil {
			caught("robot_cubes_raw_ex", v)
			st = panicked(count)
		}
	}()
	if out == nil && items > 0 {
		return status(count, 0, foreign.ErrNilOutput)
	}
	got, err := bridge().RobotCubesRaw(cubeView(out, items), cstr(cube), cstr(colour))
	return status(count, got, err)
}

//export libfj_string_free
func libfj_string_free(p *C.char) {
	foreign.FreeString(alloc, cstr(p))
}

//export libfj_factory_robot_list_info_free
func libfj_factory_robot_list_info_free(r *C.FactoryRobotListInfo) {
	if r != nil {
		foreign.FreeList(alloc, (*foreign.ListRecord)(unsafe.Pointer(r)))
	}
}

//export libfj_factory_robot_info_free
func libfj_factory_robot_info_free(r *C.FactoryRobotGetInfo) {
	if r != nil {
		foreign.FreeDetail(alloc, detail(r))
	}
}

// libfj_status_string names a status code; free the result with libfj_string_free
//
//export libfj_status_string
func libfj_status_string(code C.int32_t) *C.char {
	p, err := foreign.OwnedString(alloc, foreign.Status(code).String())
	if err != nil {
		return nil
	}
	return (*C.char)(unsafe.Pointer(p))
}

// libfj_version reports the build; free the result with libfj_string_free
//
//export libfj_version
func libfj_version() *C.char {
	p, err := foreign.OwnedString(alloc, version.Info("libfj").String())
	if err != nil {
		return nil
	}
	return (*C.char)(unsafe.Pointer(p))
}
